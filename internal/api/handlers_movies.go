// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/cineverse-app/cineverse/internal/models"
	"github.com/cineverse-app/cineverse/internal/validation"
)

// MovieDetail returns the full detail page payload for one movie: the rich
// record (credits, providers, videos) plus similarity recommendations
// resolved through the offline index and hydrated into full records.
func (h *Handler) MovieDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	movieID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || movieID < 1 {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "movie id must be a positive integer")
		return
	}

	record := h.tmdb.MovieDetails(ctx, movieID)
	if record == nil {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "movie not found")
		return
	}

	recommendations := h.hydrate(ctx, h.recommender.Recommend(record.Title, 0))
	if recommendations == nil {
		recommendations = []models.ContentRecord{}
	}

	respondJSON(w, http.StatusOK, models.MovieDetail{
		Details:         record,
		Recommendations: recommendations,
	}, -1)
}

// recommendationRequest is the validated body of POST /recommend.
type recommendationRequest struct {
	MovieName string `json:"movie_name" validate:"required,min=1,max=200"`
}

// Recommend returns titles similar to the named movie, hydrated into full
// records. An unknown title yields an empty list with 200: not knowing a
// movie is a normal answer, not a client error.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message)
		return
	}

	ids := h.recommender.Recommend(req.MovieName, 0)
	records := h.hydrate(ctx, ids)
	if records == nil {
		records = []models.ContentRecord{}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"movie_name":      req.MovieName,
		"recommendations": records,
	}, len(records))
}

// PersonCredits returns a person's notable filmography.
func (h *Handler) PersonCredits(w http.ResponseWriter, r *http.Request) {
	personID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || personID < 1 {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "person id must be a positive integer")
		return
	}
	results := h.tmdb.PersonMovieCredits(r.Context(), personID)
	respondJSON(w, http.StatusOK, results, len(results))
}
