package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/gin-gonic/gin"
)

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

type UserHandler struct {
	users  userFinder
	logger *slog.Logger
}

func NewUserHandler(users userFinder, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger.With("component", "user_handler")}
}

// GET /api/v0/users/
// Hitting the collection root without an id is a client error.
func (h *UserHandler) MissingID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msgUserIDParamRequired})
}

// GET /api/v0/users/:id — the id is the user's email.
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		h.MissingID(c)
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgUserNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get user", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, user)
}
