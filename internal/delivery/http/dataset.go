package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarpress-backend/internal/delivery/http/utils"
	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/usecase"
)

type Dataset struct {
	authManager    utils.Auth
	datasetUseCase usecase.Dataset
}

func NewDataset(authManager utils.Auth, datasetUseCase usecase.Dataset) *Dataset {
	return &Dataset{
		authManager:    authManager,
		datasetUseCase: datasetUseCase,
	}
}

func (d *Dataset) Configure(server *echo.Group) {
	server.POST("/add", d.SubmitDataset)
	server.GET("/get", d.GetDataset)
}

func (d *Dataset) SubmitDataset(c echo.Context) error {
	userID, err := d.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Not authenticated",
		})
	}

	form := entity.DatasetForm{}
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
	datasetFile, err := utils.AttachmentFromForm(c, "dataset_file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Unreadable dataset file: " + err.Error(),
		})
	}

	request := &entity.SubmitDatasetRequest{
		UserID:        userID,
		Form:          form,
		Thumbnail:     thumbnail,
		DatasetFile:   datasetFile,
		FromPublisher: c.FormValue("from_publisher"),
	}

	result, err := d.datasetUseCase.SubmitDataset(c.Request().Context(), request)
	if err != nil {
		return submissionError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":      "ok",
		"id":          result.ID,
		"redirect_to": result.RedirectTo,
	})
}

func (d *Dataset) GetDataset(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "id is required",
		})
	}
	dataset, err := d.datasetUseCase.GetDataset(c.Request().Context(), id)
	if err != nil {
		return submissionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"dataset": dataset,
	})
}
