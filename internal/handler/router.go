package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayaccess/internal/handler/api"
	"stayaccess/internal/handler/middleware"
	"stayaccess/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, guestAccessHandler *api.GuestAccessHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, guestAccessHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, guestAccessHandler *api.GuestAccessHandler) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		guest := apiGroup.Group("/guest")
		{
			addRoutes(guest, []route{
				{Method: http.MethodPost, Path: "/access", Handler: guestAccessHandler.Issue},
				{Method: http.MethodPost, Path: "/access/consume", Handler: guestAccessHandler.Consume},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: guestAccessHandler.GetBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
