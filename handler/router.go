package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"stickynotes/config"
	"stickynotes/middleware"
	"stickynotes/services"
	"stickynotes/usecase"
	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies are the services the router wires into handlers.
type Dependencies struct {
	Config    *config.Config
	Logger    *zap.Logger
	Notes     *usecase.NotesService
	Users     *usecase.UserService
	Tokens    *services.TokenService
	Blacklist services.TokenBlacklist // nil disables revocation
	Ping      func(ctx context.Context) error

	// CPUSampleInterval is how long /healthz samples CPU usage for.
	CPUSampleInterval time.Duration
}

func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.RequestTracingMiddleware(),
		middleware.RecoveryMiddleware(deps.Logger),
		middleware.LoggingMiddleware(deps.Logger),
		middleware.MetricsMiddleware(),
		middleware.SecurityHeaders(),
		middleware.CORSMiddleware(deps.Config.CORS.AllowedOrigins),
		middleware.RequestSizeLimiter(deps.Config.MaxBodyBytes),
	)

	router.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Not found.")
	})
	router.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, utils.ErrorResponse{
			Detail: fmt.Sprintf("Method %q not allowed.", c.Request.Method),
		})
	})

	health := NewHealthHandler(deps.Ping, deps.CPUSampleInterval, deps.Logger)
	router.GET("/healthz", health.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := NewAuthHandler(deps.Users, deps.Tokens, deps.Blacklist, deps.Logger)
	notes := NewNotesHandler(deps.Notes, deps.Logger)

	api := router.Group("/api")
	api.Use(middleware.NoStore())
	{
		api.POST("/user/register/", auth.Register)
		api.POST("/token/", auth.ObtainToken)
		api.POST("/token/refresh/", auth.RefreshToken)
		api.POST("/token/blacklist/", auth.BlacklistToken)
	}

	protected := api.Group("/notes")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.Blacklist, deps.Logger))
	{
		protected.GET("/", notes.ListNotes)
		protected.POST("/", notes.CreateNote)

		protected.GET("/:id/", middleware.ValidateNoteID(), notes.GetNote)

		protected.GET("/:id/edit/", middleware.ValidateNoteID(), notes.GetNote)
		protected.PUT("/:id/edit/", middleware.ValidateNoteID(), notes.UpdateNote)
		protected.PATCH("/:id/edit/", middleware.ValidateNoteID(), notes.PatchNote)

		protected.DELETE("/delete/:id/", middleware.ValidateNoteID(), notes.DeleteNote)
	}

	return router
}
