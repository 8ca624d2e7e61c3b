// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package models

import "time"

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Intent is the structured result of parsing a free-text search query.
// GenreID and Year are zero when the query did not mention them.
type Intent struct {
	Type     string `json:"type"` // "search", "recommendation", or "person"
	Keywords string `json:"keywords"`
	GenreID  int    `json:"genre,omitempty"`
	Year     int    `json:"year,omitempty"`
	Mood     string `json:"mood,omitempty"`
}

// SmartSearchResult pairs the parsed intent with the resolved results.
type SmartSearchResult struct {
	Intent  Intent          `json:"intent"`
	Results []ContentRecord `json:"results"`
}

// RecommendationRequest is the body of POST /recommend.
type RecommendationRequest struct {
	MovieName string `json:"movie_name"`
}
