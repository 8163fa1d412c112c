package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodtricount/backend/internal/auth"
	"github.com/goodtricount/backend/internal/config"
	"github.com/goodtricount/backend/internal/server"
	"github.com/goodtricount/backend/internal/service"
	"github.com/goodtricount/backend/internal/storage/sqlite"
	"github.com/goodtricount/backend/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	locks := service.NewLocks()
	authSvc := service.NewAuthService(authenticator, jwtManager)
	groups := service.NewGroupService(store, locks)
	ledgerSvc := service.NewLedgerService(store, locks)
	invites := service.NewInviteService(store, locks)

	app := server.New(store, authSvc, groups, ledgerSvc, invites, jwtManager)

	go func() {
		slog.Info("Server starting", "address", cfg.Addr)
		if err := app.Listen(cfg.Addr); err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	if err := app.Shutdown(); err != nil {
		slog.Error("Shutdown failed", "error", err)
	}
}
