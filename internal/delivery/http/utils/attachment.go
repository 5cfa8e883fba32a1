package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarpress-backend/internal/entity"
)

// AttachmentFromForm извлекает вложение из multipart-поля формы.
// Отсутствие поля не считается ошибкой: вложения необязательны,
// в этом случае возвращается (nil, nil).
func AttachmentFromForm(c echo.Context, field string) (*entity.Attachment, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	// multipart-файлы закрывает http-сервер по завершении запроса

	return &entity.Attachment{
		FileName: fileHeader.Filename,
		Size:     fileHeader.Size,
		MimeType: fileHeader.Header.Get("Content-Type"),
		RawBytes: src,
	}, nil
}
