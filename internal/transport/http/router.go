package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/akarimov/imagefeed/internal/token"
	"github.com/akarimov/imagefeed/internal/transport/http/handler"
	"github.com/akarimov/imagefeed/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	feedHandler *handler.FeedHandler,
	codec *token.Codec,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// The one shared authentication gate; protected routes below must all
	// use this exact instance so the check ordering stays identical.
	authMW := middleware.Auth(codec)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Nothing here.")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "App is healthy."})
	})

	api := r.Group("/api/v0")

	users := api.Group("/users")
	users.GET("", userHandler.MissingID)
	users.GET("/:id", userHandler.GetByID)
	users.POST("", authHandler.Register)

	auth := users.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.GET("/verification", authMW, authHandler.Verification)

	feed := api.Group("/feed")
	feed.GET("", feedHandler.List)
	feed.GET("/:id", feedHandler.GetByID)
	feed.POST("", authMW, feedHandler.Create)
	feed.GET("/signed-url/:filename", authMW, feedHandler.SignedURL)

	return r
}
