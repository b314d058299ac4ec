// Package main is the entry point for the N-Rank fund analytics service.
// It exposes the pure scoring/projection engine over a small HTTP API;
// data retrieval, persistence, and presentation live in other services.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kamalneel/agrawal-estate-sub000/internal/config"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scoring"
	"github.com/kamalneel/agrawal-estate-sub000/internal/server"
	"github.com/kamalneel/agrawal-estate-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().
		Str("reference_date", cfg.ReferenceDate.Format("2006-01-02")).
		Msg("Starting N-Rank analytics service")

	scorer := scoring.NewScorer()
	if cfg.BandsFile != "" {
		bands, err := scoring.LoadBands(cfg.BandsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.BandsFile).Msg("Failed to load banding policy override")
		}
		scorer = scoring.NewScorerWithBands(bands)
		log.Info().Str("file", cfg.BandsFile).Msg("Loaded banding policy override")
	}

	srv := server.New(server.Config{
		Log:    log,
		Cfg:    cfg,
		Scorer: scorer,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("Server failed")
		}
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}

	log.Info().Msg("Stopped")
}
