// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package api

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/cineverse-app/cineverse/internal/models"
)

// Home aggregates the six home page rows for a country in one response:
// trending, popular, top rated, upcoming, plus the action and comedy genre
// rows. All six upstream fetches run in parallel into fixed positions, so
// a failing row comes back empty without shifting or hiding its siblings.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	country := h.country(r)

	sections := []models.HomeSection{
		{Title: "Trending Now"},
		{Title: "Popular"},
		{Title: "Top Rated"},
		{Title: "Upcoming"},
		{Title: "Action"},
		{Title: "Comedy"},
	}

	var wg sync.WaitGroup
	wg.Add(len(sections))
	go func() {
		defer wg.Done()
		sections[0].Data = h.tmdb.Trending(ctx, country)
	}()
	go func() {
		defer wg.Done()
		sections[1].Data = h.tmdb.Popular(ctx, country)
	}()
	go func() {
		defer wg.Done()
		sections[2].Data = h.tmdb.TopRated(ctx, country)
	}()
	go func() {
		defer wg.Done()
		sections[3].Data = h.tmdb.Upcoming(ctx, country)
	}()
	go func() {
		defer wg.Done()
		sections[4].Data = h.tmdb.ByGenre(ctx, 28, country)
	}()
	go func() {
		defer wg.Done()
		sections[5].Data = h.tmdb.ByGenre(ctx, 35, country)
	}()
	wg.Wait()

	for i := range sections {
		if sections[i].Data == nil {
			sections[i].Data = []models.ContentRecord{}
		}
	}

	respondJSON(w, http.StatusOK, models.HomePage{
		Region:   country,
		Sections: sections,
	}, -1)
}

// discoverFilters builds upstream discover parameters from the supported
// query string filters. Unsupported parameters are ignored rather than
// forwarded, so callers cannot smuggle arbitrary upstream options through.
func discoverFilters(query url.Values) url.Values {
	filters := url.Values{}
	if genre := query.Get("genre"); genre != "" {
		filters.Set("with_genres", genre)
	}
	if year := query.Get("year"); year != "" {
		filters.Set("primary_release_year", year)
	}
	if lang := query.Get("language"); lang != "" {
		filters.Set("with_original_language", lang)
	}
	if sort := query.Get("sort_by"); sort != "" {
		filters.Set("sort_by", sort)
	}
	return filters
}

// DiscoverMovies runs a filtered movie discover query.
func (h *Handler) DiscoverMovies(w http.ResponseWriter, r *http.Request) {
	results := h.tmdb.DiscoverMovies(r.Context(), discoverFilters(r.URL.Query()))
	respondJSON(w, http.StatusOK, results, len(results))
}

// DiscoverSeries runs a filtered TV discover query. The year filter maps
// to first_air_date_year for series.
func (h *Handler) DiscoverSeries(w http.ResponseWriter, r *http.Request) {
	filters := discoverFilters(r.URL.Query())
	if year := filters.Get("primary_release_year"); year != "" {
		filters.Del("primary_release_year")
		filters.Set("first_air_date_year", year)
	}
	results := h.tmdb.DiscoverTV(r.Context(), filters)
	respondJSON(w, http.StatusOK, results, len(results))
}

// Universe returns the movies of a curated franchise. Unknown keys yield
// an empty list, not an error: the franchise set is a curated menu and an
// unlisted key simply has no content.
func (h *Handler) Universe(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	results := h.tmdb.Universe(r.Context(), key)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"universe": key,
		"movies":   results,
	}, len(results))
}
