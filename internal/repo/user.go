package repo

import (
	"errors"

	"scholarpress-backend/internal/entity"
)

type User interface {
	// AddUser добавляет нового пользователя
	AddUser(user *entity.User) (int, error)
	// GetUser возвращает пользователя по его ID
	GetUser(userID int) (*entity.User, error)
	// GetUserByEmail возвращает пользователя по его email
	GetUserByEmail(email string) (*entity.User, error)
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailExists     = errors.New("email already exists")
	ErrInvalidPassword = errors.New("invalid password")
)
