// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

// Package main is the entry point for the CineVerse server.
//
// CineVerse is a movie discovery backend that aggregates upstream metadata
// into region-aware browse rows, rich detail pages, and curated franchise
// collections, paired with an offline content-similarity recommender.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Cache: in-memory TTL/LRU store for upstream responses
//  3. Metadata client: rate-limited, circuit-broken upstream access
//  4. Recommender: similarity artifacts loaded from disk
//  5. Intent parser: Gemini-backed when a key is configured, heuristic
//     otherwise
//  6. HTTP server: REST API with Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (TMDB_API_KEY, HTTP_PORT, GEMINI_API_KEY, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// TMDB_API_KEY is the only required setting.
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (shutdown timeout)
//
// # Example Usage
//
//	export TMDB_API_KEY=your-api-key
//	./cineverse
//
// With the Gemini intent parser and local artifacts:
//
//	export TMDB_API_KEY=your-api-key
//	export GEMINI_API_KEY=your-gemini-key
//	export RECOMMEND_TITLES_PATH=./artifacts/titles.json
//	export RECOMMEND_MATRIX_PATH=./artifacts/similarity.json
//	./cineverse
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cineverse-app/cineverse/internal/api"
	"github.com/cineverse-app/cineverse/internal/cache"
	"github.com/cineverse-app/cineverse/internal/config"
	"github.com/cineverse-app/cineverse/internal/intent"
	"github.com/cineverse-app/cineverse/internal/logging"
	"github.com/cineverse-app/cineverse/internal/recommend"
	"github.com/cineverse-app/cineverse/internal/tmdb"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("upstream", cfg.TMDB.BaseURL).
		Str("default_country", cfg.API.DefaultCountry).
		Msg("Starting CineVerse")

	store := cache.New(cache.Config{
		TTL:      cfg.TMDB.CacheTTL,
		Capacity: cfg.TMDB.CacheCapacity,
	})
	client := tmdb.NewClient(&cfg.TMDB, store)

	index := recommend.LoadIndex(cfg.Recommend.TitlesPath, cfg.Recommend.MatrixPath)
	recommender := recommend.NewRecommender(index, cfg.Recommend.TopK)
	if recommender.Ready() {
		logging.Info().Int("titles", index.Size()).Msg("Similarity index loaded")
	} else {
		logging.Warn().
			Str("titles_path", cfg.Recommend.TitlesPath).
			Str("matrix_path", cfg.Recommend.MatrixPath).
			Msg("Similarity artifacts unavailable, recommendations will be empty")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	parser := intent.NewParser(ctx, &cfg.Intent)

	handler := api.NewHandler(client, recommender, parser, cfg)
	router := api.NewRouter(handler, &cfg.API)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}

	logging.Info().Msg("Application stopped gracefully")
}
