package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/itemsim/server/internal/auth"
	"github.com/itemsim/server/internal/character"
	"github.com/itemsim/server/internal/config"
	"github.com/itemsim/server/internal/database"
	"github.com/itemsim/server/internal/database/postgres"
	"github.com/itemsim/server/internal/equipment"
	"github.com/itemsim/server/internal/handler"
	"github.com/itemsim/server/internal/item"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/market"
	"github.com/itemsim/server/internal/server"
	"github.com/itemsim/server/internal/user"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	handler.InitValidator()

	if err := database.MigrateUserStore(cfg.UserDBConnString()); err != nil {
		slog.Error("User store migration failed", "error", err)
		os.Exit(1)
	}
	if err := database.MigrateGameStore(cfg.GameDBConnString()); err != nil {
		slog.Error("Game store migration failed", "error", err)
		os.Exit(1)
	}

	userPool, err := database.NewPool(cfg.UserDBConnString(),
		database.DefaultMaxConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to user store", "error", err)
		os.Exit(1)
	}
	defer userPool.Close()

	gamePool, err := database.NewPool(cfg.GameDBConnString(),
		database.DefaultMaxConnections, database.DefaultMaxIdleTime, database.DefaultMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to game store", "error", err)
		os.Exit(1)
	}
	defer gamePool.Close()

	userRepo := postgres.NewUserRepository(userPool)
	characterRepo := postgres.NewCharacterRepository(userPool)
	itemRepo := postgres.NewItemRepository(gamePool)

	issuer := auth.NewTokenIssuer(cfg.SessionSecret, cfg.TokenTTL)

	svcs := server.Services{
		User:      user.NewService(userRepo, issuer),
		Character: character.NewService(characterRepo, itemRepo),
		Equipment: equipment.NewService(characterRepo, itemRepo),
		Market:    market.NewService(characterRepo, itemRepo),
		Item:      item.NewService(itemRepo),
	}

	srv := server.NewServer(cfg.Port, issuer, userPool, gamePool, svcs)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shut down", "error", err)
	}
	slog.Info("Server stopped")
}
