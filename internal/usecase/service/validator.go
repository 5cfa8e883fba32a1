package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"scholarpress-backend/internal/entity"
)

// ValidateAttachment проверяет вложение до любой попытки загрузки.
// Проверка чистая: при отклонении возвращается *entity.ValidationError
// с причиной too_large или wrong_type, вложение к загрузчику не попадает.
func ValidateAttachment(a *entity.Attachment, policy entity.AttachmentPolicy) error {
	if a.Size > policy.MaxSizeBytes {
		return &entity.ValidationError{
			Reason: entity.ReasonTooLarge,
			Detail: fmt.Sprintf("file size must be less than %dMB", policy.MaxSizeBytes/entity.MB),
		}
	}
	if policy.AcceptedTypePrefix == "" {
		return nil
	}
	mime := a.MimeType
	if mime == "" {
		// Клиент не прислал content type: определяем по содержимому,
		// прочитанные байты возвращаем обратно в поток
		sniffed, err := sniffMimeType(a)
		if err != nil {
			return &entity.ValidationError{Reason: entity.ReasonWrongType, Detail: "unreadable file"}
		}
		mime = sniffed
	}
	if !strings.HasPrefix(mime, policy.AcceptedTypePrefix) {
		return &entity.ValidationError{
			Reason: entity.ReasonWrongType,
			Detail: fmt.Sprintf("expected %s*, got %s", policy.AcceptedTypePrefix, mime),
		}
	}
	a.MimeType = mime
	return nil
}

func sniffMimeType(a *entity.Attachment) (string, error) {
	head := make([]byte, 3072)
	n, err := io.ReadFull(a.RawBytes, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	head = head[:n]
	a.RawBytes = io.MultiReader(bytes.NewReader(head), a.RawBytes)
	return mimetype.Detect(head).String(), nil
}
