package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	"scholarpress-backend/internal/usecase"
)

type User struct {
	userRepo repo.User
}

func NewUser(userRepo repo.User) usecase.User {
	return &User{userRepo: userRepo}
}

func (u *User) Register(req *entity.RegisterRequest) (int, error) {
	// Хешируем пароль пользователя
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	user := &entity.User{
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	return u.userRepo.AddUser(user)
}

func (u *User) Login(email, password string) (int, error) {
	user, err := u.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			return 0, repo.ErrInvalidPassword
		}
		return 0, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return 0, repo.ErrInvalidPassword
	}

	return user.ID, nil
}

func (u *User) GetUser(userID int) (*entity.UserProfile, error) {
	user, err := u.userRepo.GetUser(userID)
	if err != nil {
		return nil, err
	}

	return &entity.UserProfile{
		ID:       user.ID,
		Nickname: user.Nickname,
		Email:    user.Email,
	}, nil
}
