// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package api

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/cineverse-app/cineverse/internal/logging"
	"github.com/cineverse-app/cineverse/internal/models"
)

// Search performs a free-text movie title search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "query parameter is required")
		return
	}
	results := h.tmdb.SearchMovies(r.Context(), query)
	respondJSON(w, http.StatusOK, results, len(results))
}

// SmartSearch parses the query into structured intent first and resolves
// it accordingly: recommendation intent goes through the similarity index,
// genre intent through discover, everything else through plain search.
func (h *Handler) SmartSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "query parameter is required")
		return
	}

	parsed := h.intent.Parse(ctx, query)
	logging.Ctx(ctx).Debug().
		Str("type", parsed.Type).
		Str("keywords", parsed.Keywords).
		Int("genre", parsed.GenreID).
		Int("year", parsed.Year).
		Msg("Parsed search intent")

	var results []models.ContentRecord
	switch {
	case parsed.Type == "recommendation":
		ids := h.recommender.Recommend(parsed.Keywords, 0)
		results = h.hydrate(ctx, ids)
		if len(results) == 0 {
			// Unknown title in the similarity index: degrade to search so
			// the user still gets something.
			results = h.tmdb.SearchMovies(ctx, parsed.Keywords)
		}
	case parsed.GenreID != 0 || parsed.Year != 0:
		filters := url.Values{}
		if parsed.GenreID != 0 {
			filters.Set("with_genres", strconv.Itoa(parsed.GenreID))
		}
		if parsed.Year != 0 {
			filters.Set("primary_release_year", strconv.Itoa(parsed.Year))
		}
		results = h.tmdb.DiscoverMovies(ctx, filters)
	default:
		keywords := parsed.Keywords
		if keywords == "" {
			keywords = query
		}
		results = h.tmdb.SearchMovies(ctx, keywords)
	}

	if results == nil {
		results = []models.ContentRecord{}
	}
	respondJSON(w, http.StatusOK, models.SmartSearchResult{
		Intent:  parsed,
		Results: results,
	}, len(results))
}

// SearchPerson performs a free-text person search.
func (h *Handler) SearchPerson(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "query parameter is required")
		return
	}
	results := h.tmdb.SearchPeople(r.Context(), query)
	respondJSON(w, http.StatusOK, results, len(results))
}
