package postgres

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
)

type UserDB struct {
	db *sqlx.DB
}

func NewUser(db *sqlx.DB) repo.User {
	return &UserDB{db: db}
}

func (u *UserDB) AddUser(user *entity.User) (int, error) {
	// Сначала проверяем, что email свободен
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM "user" WHERE email = $1)`
	err := u.db.QueryRow(query, user.Email).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, repo.ErrEmailExists
	}

	var userID int
	query = `INSERT INTO "user" (nickname, email, password_hash) VALUES ($1, $2, $3) RETURNING id`
	err = u.db.QueryRow(query, user.Nickname, user.Email, user.PasswordHash).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (u *UserDB) GetUser(userID int) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, nickname, email, password_hash FROM "user" WHERE id = $1`
	err := u.db.Get(&user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserDB) GetUserByEmail(email string) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, nickname, email, password_hash FROM "user" WHERE email = $1`
	err := u.db.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
