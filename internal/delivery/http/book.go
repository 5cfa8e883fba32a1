package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarpress-backend/internal/delivery/http/utils"
	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/usecase"
)

type Book struct {
	authManager utils.Auth
	bookUseCase usecase.Book
}

func NewBook(authManager utils.Auth, bookUseCase usecase.Book) *Book {
	return &Book{
		authManager: authManager,
		bookUseCase: bookUseCase,
	}
}

func (b *Book) Configure(server *echo.Group) {
	server.POST("/add", b.SubmitBook)
	server.POST("/edit", b.SubmitBook)
	server.GET("/get", b.GetBook)
	server.GET("/list", b.GetPublisherBooks)
}

// SubmitBook обслуживает и создание, и редактирование: наличие book_id
// в форме переключает вставку на обновление
func (b *Book) SubmitBook(c echo.Context) error {
	userID, err := b.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Not authenticated",
		})
	}

	form := entity.BookForm{}
	if err := c.Bind(&form); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request format",
		})
	}

	cover, err := utils.AttachmentFromForm(c, "cover_image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Unreadable cover image: " + err.Error(),
		})
	}
	thumbnail, err := utils.AttachmentFromForm(c, "thumbnail")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Unreadable thumbnail: " + err.Error(),
		})
	}

	request := &entity.SubmitBookRequest{
		UserID:        userID,
		BookID:        c.FormValue("book_id"),
		Form:          form,
		Cover:         cover,
		Thumbnail:     thumbnail,
		FromPublisher: c.FormValue("from_publisher"),
	}

	result, err := b.bookUseCase.SubmitBook(c.Request().Context(), request)
	if err != nil {
		return submissionError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":      "ok",
		"id":          result.ID,
		"redirect_to": result.RedirectTo,
	})
}

func (b *Book) GetBook(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "id is required",
		})
	}
	book, err := b.bookUseCase.GetBook(c.Request().Context(), id)
	if err != nil {
		return submissionError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"book": book,
	})
}

func (b *Book) GetPublisherBooks(c echo.Context) error {
	request := &entity.PublisherBooksRequest{}
	if err := utils.ReadQuery(c, request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request format",
		})
	}
	response, err := b.bookUseCase.GetPublisherBooks(c.Request().Context(), request)
	if err != nil {
		return submissionError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
