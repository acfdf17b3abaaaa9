package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nikitsoni/expense-system/internal/config"
	"github.com/nikitsoni/expense-system/internal/handlers"
	"github.com/nikitsoni/expense-system/internal/middleware"
	"github.com/nikitsoni/expense-system/internal/service"
	"github.com/nikitsoni/expense-system/internal/storage"
	"github.com/nikitsoni/expense-system/internal/storage/memory"
	"github.com/nikitsoni/expense-system/internal/storage/sqlite"
	"github.com/nikitsoni/expense-system/pkg/logging"
)

func newStore(cfg config.Config) (storage.Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return memory.New(), nil
	case "sqlite":
		return sqlite.New(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}

func main() {
	logging.Setup()

	cfg := config.Load()

	// Stores are built once here and injected everywhere; nothing else
	// holds process-wide state.
	store, err := newStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.StoreBackend, "db_path", cfg.DBPath)

	userHandler := handlers.NewUserHandler(service.NewUserService(store))
	expenseHandler := handlers.NewExpenseHandler(service.NewExpenseService(store, store))
	healthHandler := handlers.NewHealthHandler(store)

	mux := handlers.Routes(userHandler, expenseHandler, healthHandler)

	// Logging and CORS wrap the whole mux
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	handler := middleware.Logging(c.Handler(mux))

	// h2c allows HTTP/2 without TLS for clients that want it
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2cHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
