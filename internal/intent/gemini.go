// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package intent

import (
	"context"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	"github.com/cineverse-app/cineverse/internal/config"
	"github.com/cineverse-app/cineverse/internal/logging"
	"github.com/cineverse-app/cineverse/internal/models"
)

const intentPrompt = `Analyze this movie search query and respond with JSON only:
{"type": "search|recommendation|person", "keywords": "main search terms", "genre": <TMDB genre id or 0>, "year": <4-digit year or 0>, "mood": "optional mood"}

Query: %q`

// GeminiParser extracts intent with the Gemini API. Every failure mode
// (request error, malformed JSON, empty response) falls back to the
// heuristic parser so smart search never breaks when the LLM is down.
type GeminiParser struct {
	client   *genai.Client
	model    string
	cfg      config.IntentConfig
	fallback *HeuristicParser
	log      zerolog.Logger
}

// NewGeminiParser creates a Gemini-backed parser.
func NewGeminiParser(ctx context.Context, cfg *config.IntentConfig) (*GeminiParser, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiParser{
		client:   client,
		model:    cfg.GeminiModel,
		cfg:      *cfg,
		fallback: NewHeuristicParser(),
		log:      logging.WithComponent("intent"),
	}, nil
}

// Parse asks Gemini to classify the query, falling back to the heuristic
// on any failure.
func (p *GeminiParser) Parse(ctx context.Context, query string) models.Intent {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(0.1) // Low temperature for consistent output
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(intentPrompt, query)))
	if err != nil {
		p.log.Warn().Err(err).Msg("Gemini intent parsing failed, using heuristic")
		return p.fallback.Parse(ctx, query)
	}

	text, err := extractText(resp)
	if err != nil {
		p.log.Warn().Err(err).Msg("Empty Gemini response, using heuristic")
		return p.fallback.Parse(ctx, query)
	}

	var intent models.Intent
	if err := json.Unmarshal([]byte(cleanJSONBlock(text)), &intent); err != nil {
		p.log.Warn().Err(err).Msg("Malformed Gemini intent JSON, using heuristic")
		return p.fallback.Parse(ctx, query)
	}

	if intent.Type == "" {
		intent.Type = "search"
	}
	if intent.Keywords == "" {
		intent.Keywords = strings.TrimSpace(query)
	}
	return intent
}

// Close releases the underlying Gemini client.
func (p *GeminiParser) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// extractText extracts text from a Gemini API response.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}
	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
