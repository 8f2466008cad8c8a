package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/akarimov/imagefeed/internal/metrics"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/v0/users/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	// Bind errors are deliberately not surfaced: a missing or unreadable
	// body falls through to the field checks, which own the 400 messages.
	var req credentialsRequest
	_ = c.ShouldBindJSON(&req)

	tok, user, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailInvalid):
			metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"auth": false, "message": msgLoginEmailInvalid})
		case errors.Is(err, domain.ErrPasswordRequired):
			metrics.LoginsTotal.WithLabelValues("invalid_input").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"auth": false, "message": msgPasswordRequired})
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"auth": false, "message": msgUserWasNotFound})
		case errors.Is(err, domain.ErrPasswordMismatch):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"auth": false, "message": msgPasswordInvalid})
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
			h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"auth": true, "token": tok, "user": user})
}

// POST /api/v0/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	_ = c.ShouldBindJSON(&req)

	tok, user, err := h.authUsecase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailInvalid):
			metrics.RegistrationsTotal.WithLabelValues("invalid_input").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"auth": false, "message": msgRegisterEmailInvalid})
		case errors.Is(err, domain.ErrPasswordRequired):
			metrics.RegistrationsTotal.WithLabelValues("invalid_input").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"auth": false, "message": msgPasswordRequired})
		case errors.Is(err, domain.ErrUserAlreadyExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			c.JSON(http.StatusUnprocessableEntity, gin.H{"auth": false, "message": msgUserAlreadyExists})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			h.logger.ErrorContext(c.Request.Context(), "register", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, gin.H{"token": tok, "user": user})
}

// GET /api/v0/users/auth/verification
// Runs behind the Auth middleware; reaching here means the token verified.
func (h *AuthHandler) Verification(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"auth": true, "message": msgAuthenticated})
}
