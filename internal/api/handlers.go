// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/cineverse-app/cineverse/internal/config"
	"github.com/cineverse-app/cineverse/internal/intent"
	"github.com/cineverse-app/cineverse/internal/models"
	"github.com/cineverse-app/cineverse/internal/recommend"
	"github.com/cineverse-app/cineverse/internal/tmdb"
)

// Handler holds the dependencies for all API handlers. Everything is
// injected: no handler reaches for globals, which keeps tests able to
// assemble exactly the stack they need.
type Handler struct {
	tmdb        *tmdb.Client
	recommender *recommend.Recommender
	intent      intent.Parser
	cfg         *config.Config
}

// NewHandler creates the handler set with its dependencies.
func NewHandler(client *tmdb.Client, recommender *recommend.Recommender, parser intent.Parser, cfg *config.Config) *Handler {
	return &Handler{
		tmdb:        client,
		recommender: recommender,
		intent:      parser,
		cfg:         cfg,
	}
}

// country resolves the country for a browse request from the query string,
// falling back to the configured default.
func (h *Handler) country(r *http.Request) string {
	if c := r.URL.Query().Get("country"); c != "" {
		return c
	}
	return h.cfg.API.DefaultCountry
}

// hydrate resolves recommended content ids into full records through the
// composite detail fetch. Lookups run in parallel into positional slots so
// the output preserves recommendation order; ids that resolve to nothing
// are dropped.
func (h *Handler) hydrate(ctx context.Context, ids []int) []models.ContentRecord {
	slots := make([]*models.ContentRecord, len(ids))
	var wg sync.WaitGroup
	wg.Add(len(ids))
	for i, id := range ids {
		go func(i, id int) {
			defer wg.Done()
			slots[i] = h.tmdb.MovieDetails(ctx, id)
		}(i, id)
	}
	wg.Wait()

	records := make([]models.ContentRecord, 0, len(ids))
	for _, slot := range slots {
		if slot != nil {
			records = append(records, *slot)
		}
	}
	return records
}

// Health reports service health: always alive, with cache statistics and
// whether the similarity artifacts loaded. Missing artifacts degrade the
// recommender but do not fail health checks.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats := h.tmdb.CacheStats()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "healthy",
		"recommender_ready": h.recommender.Ready(),
		"cache": map[string]interface{}{
			"entries":  stats.Entries,
			"hits":     stats.Hits,
			"misses":   stats.Misses,
			"hit_rate": stats.HitRate(),
		},
	}, -1)
}
