package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ApexPredict_Go/internal/bootstrap"
	"github.com/osse101/ApexPredict_Go/internal/config"
	"github.com/osse101/ApexPredict_Go/internal/database"
	"github.com/osse101/ApexPredict_Go/internal/handler"
	"github.com/osse101/ApexPredict_Go/internal/leaderboard"
	"github.com/osse101/ApexPredict_Go/internal/prediction"
	"github.com/osse101/ApexPredict_Go/internal/race"
	"github.com/osse101/ApexPredict_Go/internal/results"
	"github.com/osse101/ApexPredict_Go/internal/server"
	"github.com/osse101/ApexPredict_Go/internal/user"
)

const (
	dbMaxConnections  = 10
	dbMaxConnIdleTime = 5 * time.Minute
	dbMaxConnLifetime = time.Hour
	shutdownTimeout   = 10 * time.Second
)

// @title ApexPredict API
// @version 1.0
// @description Motorsport prediction game backend: race calendars, grid predictions, scoring and leaderboards.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)

	userService := user.NewService(repos.User)
	raceService := race.NewService(repos.Race)
	leaderboardService := leaderboard.NewService(repos.Leaderboard, cfg.LeaderboardCacheSize, cfg.LeaderboardCacheTTL, cfg.LeaderboardLimit)
	predictionService := prediction.NewService(repos.Prediction, repos.Race, repos.Results)
	resultsService := results.NewService(repos.Results, repos.Race, repos.Prediction, leaderboardService)

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		nil, // trusted proxies, none by default
		dbPool,
		userService,
		raceService,
		predictionService,
		resultsService,
		leaderboardService,
	)

	// Run the server in a goroutine so shutdown signals can be handled
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{Server: srv})
}
