package api

import (
	"errors"
	"net/http"

	"github.com/no0bAuntor/online-voting-system/internal/models"
	"github.com/no0bAuntor/online-voting-system/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandlers struct {
	authService service.AuthService
}

func NewAuthHandlers(authService service.AuthService) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
	}
}

func (h *AuthHandlers) Register(c *gin.Context) {

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}

	err := h.authService.Register(c, req.Username, req.Password)
	switch {
	case err == nil:
		SendSuccess(c, http.StatusOK, "Registration successful!", nil)
	case errors.Is(err, service.ErrUsernameReserved):
		SendError(c, http.StatusForbidden, err, models.ErrInvalidRequest)
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrPasswordInUse),
		errors.Is(err, service.ErrUsernameTooShort),
		errors.Is(err, service.ErrPasswordTooShort):
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
	default:
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
	}
}

func (h *AuthHandlers) Login(c *gin.Context) {

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, err, models.ErrInvalidRequest)
		return
	}

	resp, err := h.authService.Login(c, req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		SendError(c, http.StatusUnauthorized, err, models.ErrUnauthorized)
		return
	}
	if err != nil {
		SendError(c, http.StatusInternalServerError, err, models.ErrInvalidOperation)
		return
	}

	SendSuccess(c, http.StatusOK, "Login successful", resp)
}
