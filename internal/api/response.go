// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package api

import (
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"github.com/cineverse-app/cineverse/internal/logging"
	"github.com/cineverse-app/cineverse/internal/models"
)

// Error codes for API responses
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// respondJSON writes a success envelope with the given payload. count is
// included in metadata when non-negative; pass -1 for single-item responses.
func respondJSON(w http.ResponseWriter, status int, data interface{}, count int) {
	resp := models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	}
	if count >= 0 {
		resp.Metadata.Count = count
	}
	writeResponse(w, status, resp)
}

// respondError writes an error envelope.
func respondError(w http.ResponseWriter, status int, code, message string) {
	resp := models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	}
	writeResponse(w, status, resp)
}

func writeResponse(w http.ResponseWriter, status int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}
