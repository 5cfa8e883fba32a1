package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"scholarpress-backend/internal/delivery/http/utils"
	"scholarpress-backend/internal/entity"
	"scholarpress-backend/internal/repo"
	"scholarpress-backend/internal/usecase"
)

type User struct {
	userUseCase   usecase.User
	authManager   utils.Auth
	cookieManager utils.Cookie
}

func NewUser(userUseCase usecase.User, authManager utils.Auth, cookieManager utils.Cookie) *User {
	return &User{
		userUseCase:   userUseCase,
		authManager:   authManager,
		cookieManager: cookieManager,
	}
}

func (u *User) Configure(server *echo.Group) {
	server.POST("/register", u.Register)
	server.POST("/login", u.Login)
	server.POST("/logout", u.Logout)
	server.GET("/me", u.Me)
}

func (u *User) Register(c echo.Context) error {
	request := &entity.RegisterRequest{}
	if err := utils.ReadJSON(c, request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request format",
		})
	}
	userID, err := u.userUseCase.Register(request)
	if err != nil {
		if errors.Is(err, repo.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "Email is already registered",
			})
		}
		c.Logger().Errorf("registration failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Something went wrong",
		})
	}
	token, err := u.authManager.CreateToken(userID)
	if err != nil {
		c.Logger().Errorf("token creation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Something went wrong",
		})
	}
	expires := time.Now().AddDate(1, 0, 0)
	c.SetCookie(u.cookieManager.SetSessionCookie(token, expires))
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": userID,
	})
}

func (u *User) Login(c echo.Context) error {
	request := &entity.LoginRequest{}
	if err := utils.ReadJSON(c, request); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request format",
		})
	}
	userID, err := u.userUseCase.Login(request.Email, request.Password)
	if err != nil {
		if errors.Is(err, repo.ErrInvalidPassword) {
			return c.JSON(http.StatusUnauthorized, echo.Map{
				"error": "Invalid email or password",
			})
		}
		c.Logger().Errorf("login failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Something went wrong",
		})
	}
	token, err := u.authManager.CreateToken(userID)
	if err != nil {
		c.Logger().Errorf("token creation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Something went wrong",
		})
	}
	expires := time.Now().AddDate(1, 0, 0)
	c.SetCookie(u.cookieManager.SetSessionCookie(token, expires))
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": userID,
	})
}

func (u *User) Logout(c echo.Context) error {
	c.SetCookie(u.cookieManager.ClearSessionCookie())
	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}

func (u *User) Me(c echo.Context) error {
	userID, err := u.authManager.CheckAuthFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error": "Not authenticated",
		})
	}
	profile, err := u.userUseCase.GetUser(userID)
	if err != nil {
		c.Logger().Errorf("failed to load profile: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Something went wrong",
		})
	}
	return c.JSON(http.StatusOK, profile)
}
