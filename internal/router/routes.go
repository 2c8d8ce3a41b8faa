package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/curava/icp-finder/api/internal/config"
	"github.com/curava/icp-finder/api/internal/handler"
	middlewarepkg "github.com/curava/icp-finder/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Search  *handler.SearchHandler
	Enrich  *handler.EnrichHandler
	Session *handler.SessionHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	limited := middlewarepkg.RateLimiter(cfg.RateLimitSearch, "/api/search", "/api/enrich", "/api/sessions/:id/enrich")

	e.POST("/api/search", handlers.Search.Search, limited)
	e.POST("/api/enrich", handlers.Enrich.Enrich, limited)

	sessions := e.Group("/api/sessions")
	sessions.POST("", handlers.Session.Create)
	sessions.GET("/:id", handlers.Session.Get)
	sessions.POST("/:id/select", handlers.Session.Select)
	sessions.POST("/:id/enrich", handlers.Session.Enrich, limited)
	sessions.POST("/:id/draft", handlers.Session.ToggleDraft)
	sessions.POST("/:id/copied", handlers.Session.MarkCopied)
	sessions.DELETE("/:id", handlers.Session.Close)
}
