package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarpress-backend/internal/delivery/http/utils"
	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/usecase"
)

type Journal struct {
	authManager    utils.Auth
	journalUseCase usecase.Journal
}

func NewJournal(authManager utils.Auth, journalUseCase usecase.Journal) *Journal {
	return &Journal{
		authManager:    authManager,
		journalUseCase: journalUseCase,
	}
}

func (j *Journal) Configure(server *echo.Group) {
	server.POST("/add", j.SubmitJournal)
	server.GET("/get", j.GetJournal)
}

func (j *Journal) SubmitJournal(c echo.Context) error {
	userID, err := j.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Not authenticated",
		})
	}

	form := entity.JournalForm{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request format",
		})
	}

	thumbnail, err := utils.AttachmentFromForm(c, "thumbnail")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Unreadable thumbnail: " + err.Error(),
		})
	}

	request := &entity.SubmitJournalRequest{
		UserID:        userID,
		Form:          form,
		Thumbnail:     thumbnail,
		FromPublisher: c.FormValue("from_publisher"),
	}

	result, err := j.journalUseCase.SubmitJournal(c.Request().Context(), request)
	if err != nil {
		return submissionError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":      "ok",
		"id":          result.ID,
		"redirect_to": result.RedirectTo,
	})
}

func (j *Journal) GetJournal(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "id is required",
		})
	}
	journal, err := j.journalUseCase.GetJournal(c.Request().Context(), id)
	if err != nil {
		return submissionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"journal": journal,
	})
}
