package repo

import (
	"context"

	"scholarpress-backend/internal/entity"
)

type Journal interface {
	// AddJournal вставляет журнальную статью и возвращает её идентификатор
	AddJournal(ctx context.Context, journal *entity.Journal) (string, error)
	// GetJournal возвращает статью по id
	GetJournal(ctx context.Context, id string) (*entity.Journal, error)
	// CountJournalsByUser считает статьи пользователя
	CountJournalsByUser(ctx context.Context, userID int) (int, error)
}
