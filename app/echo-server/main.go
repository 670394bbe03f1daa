package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"xmasGiftAI/app/echo-server/router"
	"xmasGiftAI/business/catalog"
	"xmasGiftAI/business/suggest"
	"xmasGiftAI/internal/middleware"
	"xmasGiftAI/internal/repository/memory"
	psqlRepo "xmasGiftAI/internal/repository/postgres"
	"xmasGiftAI/internal/rest"
	"xmasGiftAI/pkg/config"
	"xmasGiftAI/pkg/database"
	"xmasGiftAI/pkg/logger"
	"xmasGiftAI/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// DealStore is the catalog as seen by both services.
type DealStore interface {
	catalog.DealRepository
	suggest.DealRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "catalog", cfg.Catalog.Backend)

	metrics.Init()

	dealRepo, err := initDealStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialise catalog", "error", err)
	}

	// Init service
	catalogService := catalog.NewCatalogService(dealRepo)
	suggestService := suggest.NewService(dealRepo, suggest.DefaultLexicon())

	// Init handler
	healthHandler := rest.NewHealthHandler(cfg.App.Name, cfg.App.Version)
	dealHandler := rest.NewDealHandler(catalogService, cfg.Server.RequestTimeout)
	suggestHandler := rest.NewSuggestHandler(suggestService, cfg.Server.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	router.SetupHealthRoutes(e, healthHandler)

	api := e.Group("/api/v1")
	router.SetupDealRoutes(api, dealHandler)
	router.SetupSuggestRoutes(api, suggestHandler)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

func initDealStore(cfg *config.Config) (DealStore, error) {
	if cfg.Catalog.Backend != config.CatalogBackendPostgres {
		repo, err := memory.NewDealRepository(memory.SeedDeals())
		if err != nil {
			return nil, err
		}
		return repo, nil
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Database connected successfully")

	repo := psqlRepo.NewDealRepository(db)
	if cfg.Catalog.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := repo.Seed(ctx, memory.SeedDeals()); err != nil {
			return nil, err
		}
		logger.Info("Catalog seeded", "deals", len(memory.SeedDeals()))
	}

	return repo, nil
}
