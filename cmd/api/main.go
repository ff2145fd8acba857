package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to MongoDB
	client, db, err := database.Connect(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Disconnect(client, cfg.Database, logger)

	// Initialize repositories
	productRepo := repository.NewCatalogRepository(db, model.CollectionProducts, logger)
	cartRepo := repository.NewCatalogRepository(db, model.CollectionCarts, logger)
	carouselRepo := repository.NewCatalogRepository(db, model.CollectionCarousels, logger)
	buyRepo := repository.NewCatalogRepository(db, model.CollectionBuys, logger)
	orderRepo := repository.NewOrderRepository(db, logger)
	userRepo := repository.NewAccountRepository(db, model.CollectionUsers, logger)
	sellerRepo := repository.NewAccountRepository(db, model.CollectionSellers, logger)

	// Initialize token manager and services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	productService := service.NewCatalogService(productRepo, "product", logger)
	cartService := service.NewCatalogService(cartRepo, "cart", logger)
	carouselService := service.NewCatalogService(carouselRepo, "carousel", logger)
	buyService := service.NewCatalogService(buyRepo, "buy", logger)
	orderService := service.NewOrderService(orderRepo, logger)
	authService := service.NewAuthService(userRepo, sellerRepo, tokens, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Products: handler.NewCatalogHandler(productService, "product", http.StatusBadRequest, logger),
		Carts:    handler.NewCatalogHandler(cartService, "cart item", http.StatusBadRequest, logger),
		Carousel: handler.NewCatalogHandler(carouselService, "carousel", http.StatusInternalServerError, logger),
		Buys:     handler.NewCatalogHandler(buyService, "product", http.StatusInternalServerError, logger),
		Orders:   handler.NewOrderHandler(orderService, logger),
		Accounts: handler.NewAccountHandler(authService, logger),
	}

	// Initialize router
	engine := router.New(handlers, tokens, cfg.CORS, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("allowed_origin", cfg.CORS.AllowedOrigin).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
