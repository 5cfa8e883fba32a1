package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
)

// assetUpload — один шаг конвейера загрузки: вложение, целевой бакет
// и политика валидации. Attachment может быть nil, тогда шаг пропускается.
type assetUpload struct {
	attachment *entity.Attachment
	bucket     string
	label      string
	policy     entity.AttachmentPolicy
}

// uploadAssets прогоняет вложения через конвейер: сначала валидация всех,
// затем строго последовательная загрузка с прерыванием на первой ошибке.
// Возвращает публичные URL по позициям плана; для пропущенных шагов — nil.
// Уже загруженные объекты при прерывании остаются в хранилище (сироты).
func uploadAssets(ctx context.Context, assets repo.Asset, userID int, plan []assetUpload) ([]*string, error) {
	for _, step := range plan {
		if step.attachment == nil {
			continue
		}
		if err := ValidateAttachment(step.attachment, step.policy); err != nil {
			return nil, err
		}
	}

	urls := make([]*string, len(plan))
	for i, step := range plan {
		if step.attachment == nil {
			continue
		}
		key := objectKey(userID, step.label, step.attachment.FileName)
		err := assets.Upload(ctx, step.bucket, key, step.attachment.RawBytes, step.attachment.Size, step.attachment.MimeType)
		if err != nil {
			return nil, &entity.UploadError{Bucket: step.bucket, Key: key, Err: err}
		}
		url := assets.PublicURL(step.bucket, key)
		urls[i] = &url
	}
	return urls, nil
}

// objectKey строит устойчивый к коллизиям ключ объекта:
// идентификатор владельца, отметка времени, класс ассета и исходное расширение.
func objectKey(userID int, label, fileName string) string {
	ext := filepath.Ext(fileName)
	if label == "" {
		return fmt.Sprintf("%d-%d%s", userID, time.Now().UnixMilli(), ext)
	}
	return fmt.Sprintf("%d-%d-%s%s", userID, time.Now().UnixMilli(), label, ext)
}

// redirectTarget выбирает адрес перехода после успешной отправки:
// список издательства, если отправка началась с его страницы, иначе кабинет.
func redirectTarget(fromPublisher string) string {
	if _, ok := entity.ResolvePublisher(fromPublisher); ok {
		return "/publishers/" + fromPublisher
	}
	return "/dashboard"
}

// publishRecordEvent отправляет событие в поток best-effort: сбой брокера
// после зафиксированной записи не отменяет отправку, только логируется.
func publishRecordEvent(ctx context.Context, events repo.RecordEvent, kind entity.RecordKind, eventType entity.RecordEventType, recordID string, userID int, title string) {
	if events == nil {
		return
	}
	event := &entity.RecordEvent{
		EventID:    uuid.New().String(),
		Kind:       kind,
		Type:       eventType,
		RecordID:   recordID,
		UserID:     userID,
		Title:      title,
		OccurredAt: time.Now(),
	}
	if err := events.PublishRecordEvent(ctx, event); err != nil {
		log.Errorf("failed to publish %s event for %s %s: %v", eventType, kind, recordID, err)
	}
}
