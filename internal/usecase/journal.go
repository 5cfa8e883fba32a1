package usecase

import (
	"context"

	"scholarpress-backend/internal/entity"
)

type Journal interface {
	// SubmitJournal проводит отправку журнальной статьи
	SubmitJournal(ctx context.Context, req *entity.SubmitJournalRequest) (*entity.SubmitResult, error)
	// GetJournal возвращает статью по id
	GetJournal(ctx context.Context, id string) (*entity.Journal, error)
}
