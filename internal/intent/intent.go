// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

// Package intent turns free-text search queries into structured search
// intent. Two parsers implement the same interface: a keyword heuristic
// that always works offline, and a Gemini-backed parser that understands
// richer phrasing and falls back to the heuristic on any failure.
package intent

import (
	"context"

	"github.com/cineverse-app/cineverse/internal/config"
	"github.com/cineverse-app/cineverse/internal/models"
)

// Parser extracts structured intent from a free-text query. Parse never
// fails: implementations degrade to a plain search intent instead of
// returning errors.
type Parser interface {
	Parse(ctx context.Context, query string) models.Intent
}

// NewParser selects the parser for the given configuration: Gemini when an
// API key is configured and the client initializes, the heuristic otherwise.
func NewParser(ctx context.Context, cfg *config.IntentConfig) Parser {
	if cfg.GeminiAPIKey == "" {
		return NewHeuristicParser()
	}
	parser, err := NewGeminiParser(ctx, cfg)
	if err != nil {
		return NewHeuristicParser()
	}
	return parser
}
