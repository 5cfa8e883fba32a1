package usecase

import (
	"context"

	"scholarpress-backend/internal/entity"
)

type Book interface {
	// SubmitBook проводит отправку книги: валидация вложений, последовательная
	// загрузка ассетов, компоновка записи, insert или update (при наличии BookID)
	SubmitBook(ctx context.Context, req *entity.SubmitBookRequest) (*entity.SubmitResult, error)
	// GetBook возвращает книгу по id
	GetBook(ctx context.Context, id string) (*entity.Book, error)
	// GetPublisherBooks возвращает книги издательства с применённым фильтром
	GetPublisherBooks(ctx context.Context, req *entity.PublisherBooksRequest) (*entity.PublisherBooksResponse, error)
}
