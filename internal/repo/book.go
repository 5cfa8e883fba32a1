package repo

import (
	"context"
	"errors"
	"time"

	"scholarpress-backend/internal/entity"
)

var ErrRecordNotFound = errors.New("record not found")

type Book interface {
	// AddBook вставляет книгу и возвращает её идентификатор
	AddBook(ctx context.Context, book *entity.Book) (string, error)
	// UpdateBook перезаписывает книгу по id, принадлежащую пользователю.
	// Возвращает entity.ErrNoRowsAffected, если ни одна строка не изменилась.
	UpdateBook(ctx context.Context, book *entity.Book) error
	// GetBook возвращает книгу по id
	GetBook(ctx context.Context, id string) (*entity.Book, error)
	// GetBooksByPublisher возвращает книги издательства, новые первыми
	GetBooksByPublisher(ctx context.Context, publisher string) ([]*entity.Book, error)
	// CountBooksByPublisher считает книги издательства, в том числе добавленные после since
	CountBooksByPublisher(ctx context.Context, publisher string, since time.Time) (total int, recent int, err error)
	// CountBooksByUser считает книги пользователя
	CountBooksByUser(ctx context.Context, userID int) (int, error)
}
