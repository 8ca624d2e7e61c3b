// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package intent

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/cineverse-app/cineverse/internal/models"
)

// genreKeywords maps query words to TMDB genre ids. First match in query
// word order wins.
var genreKeywords = map[string]int{
	"action":    28,
	"comedy":    35,
	"horror":    27,
	"romance":   10749,
	"scifi":     878,
	"sci-fi":    878,
	"drama":     18,
	"animation": 16,
}

var yearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// HeuristicParser extracts intent with keyword matching. It is the
// always-available fallback behind the Gemini parser and the only parser
// when no Gemini key is configured.
type HeuristicParser struct{}

// NewHeuristicParser returns the keyword-matching parser.
func NewHeuristicParser() *HeuristicParser {
	return &HeuristicParser{}
}

// Parse classifies the query as a plain search, scanning for a genre word
// and a four-digit year. Phrases like "movies like X" or "similar to X"
// become recommendation intent with the referenced title as keywords.
func (p *HeuristicParser) Parse(_ context.Context, query string) models.Intent {
	intent := models.Intent{
		Type:     "search",
		Keywords: strings.TrimSpace(query),
	}
	lower := strings.ToLower(intent.Keywords)

	for _, marker := range []string{"movies like ", "films like ", "similar to ", "like "} {
		if idx := strings.Index(lower, marker); idx >= 0 {
			rest := strings.TrimSpace(intent.Keywords[idx+len(marker):])
			if rest != "" {
				intent.Type = "recommendation"
				intent.Keywords = rest
				return intent
			}
		}
	}

	for _, word := range strings.Fields(lower) {
		if id, ok := genreKeywords[strings.Trim(word, ".,!?")]; ok {
			intent.GenreID = id
			break
		}
	}

	if match := yearPattern.FindString(lower); match != "" {
		if year, err := strconv.Atoi(match); err == nil {
			intent.Year = year
		}
	}

	return intent
}
