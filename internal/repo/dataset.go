package repo

import (
	"context"

	"scholarpress-backend/internal/entity"
)

type Dataset interface {
	// AddDataset вставляет датасет и возвращает его идентификатор
	AddDataset(ctx context.Context, dataset *entity.Dataset) (string, error)
	// GetDataset возвращает датасет по id
	GetDataset(ctx context.Context, id string) (*entity.Dataset, error)
	// CountDatasetsByUser считает датасеты пользователя
	CountDatasetsByUser(ctx context.Context, userID int) (int, error)
}
