package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/curava/icp-finder/api/internal/config"
	"github.com/curava/icp-finder/api/internal/handler"
	middlewarepkg "github.com/curava/icp-finder/api/internal/middleware"
	"github.com/curava/icp-finder/api/internal/router"
	"github.com/curava/icp-finder/api/internal/service"
	"github.com/curava/icp-finder/api/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	httpClient := &http.Client{Timeout: cfg.BackendTimeout}
	backend := handler.NewBackendClient(httpClient, cfg.BackendBaseURL)

	emailCleaner := service.NewEmailCleaner(cfg.EmailVerifyMX)
	enricher := handler.NewEnricher(backend, emailCleaner)

	store := session.NewStore(cfg.SessionTTL, cfg.CopiedResetDelay)
	defer store.Stop()

	handlers := router.Handlers{
		Search:  handler.NewSearchHandlerWithBackend(backend),
		Enrich:  handler.NewEnrichHandler(enricher),
		Session: handler.NewSessionHandler(store, enricher),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
