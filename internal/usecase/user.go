package usecase

import "scholarpress-backend/internal/entity"

type User interface {
	// Register регистрирует пользователя и возвращает его ID
	Register(req *entity.RegisterRequest) (int, error)
	// Login проверяет учётные данные и возвращает ID пользователя
	Login(email, password string) (int, error)
	// GetUser возвращает профиль пользователя
	GetUser(userID int) (*entity.UserProfile, error)
}
