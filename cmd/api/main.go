package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eclatdelune/lune_api/internal/config"
	"github.com/eclatdelune/lune_api/internal/database"
	"github.com/eclatdelune/lune_api/internal/handler"
	"github.com/eclatdelune/lune_api/internal/middleware"
	"github.com/eclatdelune/lune_api/internal/repository"
	"github.com/eclatdelune/lune_api/internal/service"
	"github.com/eclatdelune/lune_api/internal/store"
)

// main is the application entrypoint for the Éclat de Lune API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting lune api")

	// 3. Connect MongoDB
	client, err := database.Connect(&cfg.Mongo)
	if err != nil {
		log.Error().Err(err).Msg("mongodb connection failed")
		fmt.Fprintf(os.Stderr, "mongodb connection failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")

	// 4. Initialize store adapter
	docStore := store.New(client, cfg.Mongo.Database)

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(docStore)
	lookbookRepo := repository.NewLookbookRepository(docStore)
	journalRepo := repository.NewJournalRepository(docStore)
	loyaltyRepo := repository.NewLoyaltyRepository(docStore)

	// 6. Initialize services
	catalogSvc := service.NewCatalogService(productRepo, lookbookRepo, journalRepo)
	loyaltySvc := service.NewLoyaltyService(loyaltyRepo)
	seedSvc := service.NewSeedService(productRepo, lookbookRepo, journalRepo)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(docStore),
		Product:  handler.NewProductHandler(catalogSvc),
		Lookbook: handler.NewLookbookHandler(catalogSvc),
		Journal:  handler.NewJournalHandler(catalogSvc),
		Universe: handler.NewUniverseHandler(loyaltySvc),
		Seed:     handler.NewSeedHandler(seedSvc),
	}

	// 8. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers)

	// 9. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 11. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Product  *handler.ProductHandler
	Lookbook *handler.LookbookHandler
	Journal  *handler.JournalHandler
	Universe *handler.UniverseHandler
	Seed     *handler.SeedHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers) {
	router.GET("/", handlers.Health.GetRoot)
	router.GET("/test", handlers.Health.GetStatus)

	api := router.Group("/api")
	{
		api.GET("/products", handlers.Product.ListProducts)
		api.GET("/products/:slug", handlers.Product.GetProduct)
		api.POST("/products", handlers.Product.CreateProduct)

		api.GET("/lookbook/:season", handlers.Lookbook.GetSeason)

		api.GET("/universe/profile", handlers.Universe.GetProfile)
		api.POST("/universe/earn", handlers.Universe.EarnPhotons)

		api.GET("/journal", handlers.Journal.ListPosts)

		api.POST("/seed", handlers.Seed.Seed)
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
