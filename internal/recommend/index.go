// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

// Package recommend implements the content-similarity recommender. It
// loads precomputed artifacts produced by the offline training pipeline:
// an ordered list of (id, title) entries and a square pairwise-similarity
// matrix whose row i corresponds to entry i.
//
// The recommender is a read-only lookup over those artifacts. When the
// artifacts are missing or malformed the service still starts, with an
// empty index that answers every query with no recommendations; the
// condition is surfaced through a metrics gauge and a warning log rather
// than an error path.
package recommend

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/cineverse-app/cineverse/internal/logging"
	"github.com/cineverse-app/cineverse/internal/metrics"
)

// Entry is one indexed title: the upstream content id paired with the
// title string the offline builder trained on.
type Entry struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Index holds the similarity artifacts in memory. Immutable after load;
// safe for concurrent readers.
type Index struct {
	entries    []Entry
	similarity [][]float64
}

// NewEmptyIndex returns an index with no entries. Every lookup misses.
func NewEmptyIndex() *Index {
	return &Index{}
}

// NewIndex builds an index directly from entries and a matrix. The shape
// must already be consistent; LoadIndex is the validating path.
func NewIndex(entries []Entry, similarity [][]float64) *Index {
	return &Index{entries: entries, similarity: similarity}
}

// LoadIndex reads the entry list and similarity matrix from JSON files and
// validates their shape. Any failure degrades to an empty index: the
// recommender keeps serving, just with no results.
func LoadIndex(titlesPath, matrixPath string) *Index {
	idx, err := loadIndex(titlesPath, matrixPath)
	if err != nil {
		logging.Warn().Err(err).
			Str("titles_path", titlesPath).
			Str("matrix_path", matrixPath).
			Msg("Similarity artifacts unavailable, recommendations disabled")
		metrics.RecommendArtifactsLoaded.Set(0)
		metrics.RecommendIndexSize.Set(0)
		return NewEmptyIndex()
	}

	logging.Info().Int("titles", len(idx.entries)).Msg("Similarity artifacts loaded")
	metrics.RecommendArtifactsLoaded.Set(1)
	metrics.RecommendIndexSize.Set(float64(len(idx.entries)))
	return idx
}

func loadIndex(titlesPath, matrixPath string) (*Index, error) {
	entriesRaw, err := os.ReadFile(titlesPath)
	if err != nil {
		return nil, fmt.Errorf("reading titles: %w", err)
	}
	var entries []Entry
	if err := json.Unmarshal(entriesRaw, &entries); err != nil {
		return nil, fmt.Errorf("decoding titles: %w", err)
	}

	matrixRaw, err := os.ReadFile(matrixPath)
	if err != nil {
		return nil, fmt.Errorf("reading similarity matrix: %w", err)
	}
	var similarity [][]float64
	if err := json.Unmarshal(matrixRaw, &similarity); err != nil {
		return nil, fmt.Errorf("decoding similarity matrix: %w", err)
	}

	if err := validateShape(entries, similarity); err != nil {
		return nil, err
	}

	return &Index{entries: entries, similarity: similarity}, nil
}

// validateShape checks that the matrix is square and matches the entry
// count. A mismatch means the artifacts came from different training runs
// and any lookup through them would be garbage.
func validateShape(entries []Entry, similarity [][]float64) error {
	if len(entries) == 0 {
		return fmt.Errorf("titles list is empty")
	}
	if len(similarity) != len(entries) {
		return fmt.Errorf("matrix has %d rows for %d titles", len(similarity), len(entries))
	}
	for i, row := range similarity {
		if len(row) != len(entries) {
			return fmt.Errorf("matrix row %d has %d columns for %d titles", i, len(row), len(entries))
		}
	}
	return nil
}

// Size returns the number of indexed titles.
func (idx *Index) Size() int {
	return len(idx.entries)
}

// Entries returns the indexed entries in storage order.
func (idx *Index) Entries() []Entry {
	return idx.entries
}
