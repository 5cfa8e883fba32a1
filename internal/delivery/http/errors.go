package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	"scholarpress-backend/internal/usecase/service"
)

// submissionError переводит ошибку конвейера отправки в HTTP-ответ.
// Любой исход снимает состояние загрузки на клиенте; молчаливых отказов нет.
func submissionError(c echo.Context, err error) error {
	var validationErr *entity.ValidationError
	var uploadErr *entity.UploadError
	var persistenceErr *entity.PersistenceError

	switch {
	case errors.Is(err, entity.ErrNotAuthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Not authenticated",
		})
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  validationErr.Detail,
			"reason": validationErr.Reason,
		})
	case errors.As(err, &uploadErr):
		c.Logger().Errorf("asset upload failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to upload file",
		})
	case errors.As(err, &persistenceErr):
		c.Logger().Errorf("record persist failed: %v", err)
		message := "Failed to save the record"
		if errors.Is(persistenceErr.Err, entity.ErrNoRowsAffected) {
			message = "The record was not saved"
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": message,
		})
	case errors.Is(err, repo.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Record not found",
		})
	case errors.Is(err, service.ErrUnknownPublisher):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Unknown publisher",
		})
	default:
		// Прочее — нарушенные обязательные поля формы
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	}
}
