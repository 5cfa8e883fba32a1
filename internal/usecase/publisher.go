package usecase

import (
	"context"

	"scholarpress-backend/internal/entity"
)

type Publisher interface {
	// ListPublishers возвращает витрину издательств со счётчиками книг
	ListPublishers(ctx context.Context) ([]*entity.PublisherStats, error)
	// GetDashboardSummary возвращает счётчики записей пользователя
	GetDashboardSummary(ctx context.Context, userID int) (*entity.DashboardSummary, error)
}
