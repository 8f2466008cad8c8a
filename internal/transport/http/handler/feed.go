package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/akarimov/imagefeed/internal/usecase"
	"github.com/gin-gonic/gin"
)

type feedUsecaser interface {
	List(ctx context.Context) (*domain.FeedPage, error)
	GetByID(ctx context.Context, id int64) (*domain.FeedItem, error)
	Create(ctx context.Context, input usecase.CreateFeedItemInput) (*domain.FeedItem, error)
	SignedUploadURL(ctx context.Context, filename string) (string, error)
}

type FeedHandler struct {
	feedUsecase feedUsecaser
	logger      *slog.Logger
}

func NewFeedHandler(feedUsecase feedUsecaser, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{feedUsecase: feedUsecase, logger: logger.With("component", "feed_handler")}
}

type createFeedItemRequest struct {
	Caption string `json:"caption"`
	URL     string `json:"url"`
}

// GET /api/v0/feed
func (h *FeedHandler) List(c *gin.Context) {
	page, err := h.feedUsecase.List(c.Request.Context())
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "list feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/v0/feed/:id
func (h *FeedHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.feedUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrFeedItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgFeedItemNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get feed item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, item)
}

// POST /api/v0/feed (behind Auth)
func (h *FeedHandler) Create(c *gin.Context) {
	var req createFeedItemRequest
	_ = c.ShouldBindJSON(&req)

	item, err := h.feedUsecase.Create(c.Request.Context(), usecase.CreateFeedItemInput{
		Caption: req.Caption,
		URL:     req.URL,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCaptionRequired):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgCaptionRequired})
		case errors.Is(err, domain.ErrURLRequired):
			c.JSON(http.StatusBadRequest, gin.H{"message": msgFileURLRequired})
		default:
			h.logger.ErrorContext(c.Request.Context(), "create feed item", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

// GET /api/v0/feed/signed-url/:filename (behind Auth)
func (h *FeedHandler) SignedURL(c *gin.Context) {
	filename := c.Param("filename")

	url, err := h.feedUsecase.SignedUploadURL(c.Request.Context(), filename)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "signed url", "filename", filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
