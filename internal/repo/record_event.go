package repo

import (
	"context"

	"scholarpress-backend/internal/entity"
)

type RecordEvent interface {
	// PublishRecordEvent публикует событие отправки записи
	PublishRecordEvent(ctx context.Context, event *entity.RecordEvent) error
	// SubscribeRecordEvents возвращает канал новых событий; канал закрывается
	// при отмене контекста
	SubscribeRecordEvents(ctx context.Context) (<-chan *entity.RecordEvent, error)
}
