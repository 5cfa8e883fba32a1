package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarpress-backend/internal/delivery/http/utils"
	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/usecase"
)

type Publisher struct {
	authManager      utils.Auth
	publisherUseCase usecase.Publisher
}

func NewPublisher(authManager utils.Auth, publisherUseCase usecase.Publisher) *Publisher {
	return &Publisher{
		authManager:      authManager,
		publisherUseCase: publisherUseCase,
	}
}

func (p *Publisher) Configure(server *echo.Group) {
	server.GET("/list", p.ListPublishers)
	server.GET("/summary", p.GetDashboardSummary)
}

func (p *Publisher) ListPublishers(c echo.Context) error {
	stats, err := p.publisherUseCase.ListPublishers(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("failed to load publisher stats: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to load publishers",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"publishers": stats,
		"categories": entity.Categories,
	})
}

func (p *Publisher) GetDashboardSummary(c echo.Context) error {
	userID, err := p.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Not authenticated",
		})
	}
	summary, err := p.publisherUseCase.GetDashboardSummary(c.Request().Context(), userID)
	if err != nil {
		c.Logger().Errorf("failed to load dashboard summary: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to load summary",
		})
	}
	return c.JSON(http.StatusOK, summary)
}
