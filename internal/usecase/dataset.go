package usecase

import (
	"context"

	"scholarpress-backend/internal/entity"
)

type Dataset interface {
	// SubmitDataset проводит отправку датасета
	SubmitDataset(ctx context.Context, req *entity.SubmitDatasetRequest) (*entity.SubmitResult, error)
	// GetDataset возвращает датасет по id
	GetDataset(ctx context.Context, id string) (*entity.Dataset, error)
}
