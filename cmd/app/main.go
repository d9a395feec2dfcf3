package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plurality-game/plurality/internal/config"
	"github.com/plurality-game/plurality/internal/database"
	"github.com/plurality-game/plurality/internal/database/postgres"
	"github.com/plurality-game/plurality/internal/event"
	"github.com/plurality-game/plurality/internal/game"
	"github.com/plurality-game/plurality/internal/logger"
	"github.com/plurality-game/plurality/internal/metrics"
	"github.com/plurality-game/plurality/internal/server"
	"github.com/plurality-game/plurality/internal/stats"
	"github.com/plurality-game/plurality/internal/survey"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := config.ValidateEnv(); err != nil {
		return err
	}

	logger.Setup(os.Stdout, logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	slog.Info("Starting Plurality",
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat)

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxIdleTime,
		database.DefaultMaxLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(pool); err != nil {
		return err
	}

	surveyRepo := postgres.NewSurveyRepository(pool)
	gameRepo := postgres.NewGameRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	eventBus := event.NewMemoryBus()

	surveyService := survey.NewService(surveyRepo, eventBus)
	gameService := game.NewService(gameRepo, surveyRepo, eventBus)
	sampleService := game.NewSampleService(surveyRepo, game.DefaultSampleStoreSize, game.DefaultSampleTTL)
	statsService := stats.NewService(statsRepo)

	// Wins flow into the leaderboard through the event bus
	stats.SubscribeToWins(eventBus, statsService)
	metrics.SubscribeToEvents(eventBus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool,
		surveyService, gameService, sampleService, statsService)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		return err
	}

	slog.Info("Server stopped")
	return nil
}
