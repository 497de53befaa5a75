package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/git-217/go-carDealership/internal/cache"
	"github.com/git-217/go-carDealership/internal/client"
	"github.com/git-217/go-carDealership/internal/config"
	"github.com/git-217/go-carDealership/internal/database"
	"github.com/git-217/go-carDealership/internal/handler"
	"github.com/git-217/go-carDealership/internal/model"
	"github.com/git-217/go-carDealership/internal/page"
	"github.com/git-217/go-carDealership/internal/repository"
	"github.com/git-217/go-carDealership/internal/service"
)

func main() {
	cfg := config.Load()

	// Structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	slog.Info("starting car search server")

	ctx := context.Background()

	slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready")

	// Repositories
	brandRepo := repository.NewBrandRepo(db)
	modelRepo := repository.NewModelRepo(db)
	carRepo := repository.NewCarRepo(db)

	// Catalog snapshot cache
	catalogCache, err := cache.New[*model.Catalog](cfg.Catalog.CacheTTL)
	if err != nil {
		slog.Error("failed to create catalog cache", "error", err)
		os.Exit(1)
	}
	defer catalogCache.Close()

	catalogSvc := service.NewCatalogService(brandRepo, modelRepo, catalogCache, logger)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	searchHandler := handler.NewSearchHandler(carRepo, logger)
	pageHandler := handler.NewPageHandler(
		catalogSvc,
		client.NewSearchClient(nil),
		page.NewRenderer(cfg.Search.PriceLocale, cfg.Search.PriceSuffix),
		cfg.Search.BaseURL,
		logger,
	)

	// Router
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", healthHandler.Check)

	r.Get("/", pageHandler.Index)
	r.Post("/models", pageHandler.Models)
	r.Get("/results", pageHandler.Results)

	r.Group(func(r chi.Router) {
		r.Use(cors)
		r.Get("/search", searchHandler.Search)
		r.Options("/search", func(w http.ResponseWriter, r *http.Request) {})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort, "search_base_url", cfg.Search.BaseURL)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	// SIGHUP drops the cached catalog so new pages pick up catalog edits
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			catalogSvc.Invalidate()
			slog.Info("catalog cache invalidated")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("error shutting down server", "error", err)
	}

	slog.Info("server stopped")
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
