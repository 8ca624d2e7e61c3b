// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package recommend

import (
	"sort"
	"strings"

	"github.com/cineverse-app/cineverse/internal/metrics"
)

// Recommender answers title-similarity queries against a loaded Index.
type Recommender struct {
	index *Index
	topK  int
}

// NewRecommender wraps an index with a default result budget. topK values
// below 1 are clamped to 1.
func NewRecommender(index *Index, topK int) *Recommender {
	if topK < 1 {
		topK = 1
	}
	return &Recommender{index: index, topK: topK}
}

// Ready reports whether the similarity artifacts were loaded.
func (r *Recommender) Ready() bool {
	return r.index.Size() > 0
}

// Recommend returns the content ids of up to k titles most similar to the
// named movie, most similar first. The query matches the first indexed
// title containing it case-insensitively, in storage order. The matched
// title's own id is never part of the result. k values below 1 fall back
// to the configured default. An unmatched query or an empty index yields
// an empty slice.
func (r *Recommender) Recommend(movieName string, k int) []int {
	pos, ok := r.lookup(movieName)
	if !ok {
		metrics.RecommendLookupsTotal.WithLabelValues("miss").Inc()
		return []int{}
	}

	row := r.index.similarity[pos]

	type scored struct {
		pos   int
		score float64
	}
	candidates := make([]scored, 0, len(row))
	for i, score := range row {
		if i == pos {
			continue
		}
		candidates = append(candidates, scored{pos: i, score: score})
	}

	// Stable sort keeps storage order among equal scores, so results are
	// deterministic across calls.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if k < 1 {
		k = r.topK
	}
	if k > len(candidates) {
		k = len(candidates)
	}
	ids := make([]int, 0, k)
	for _, c := range candidates[:k] {
		ids = append(ids, r.index.entries[c.pos].ID)
	}

	metrics.RecommendLookupsTotal.WithLabelValues("hit").Inc()
	return ids
}

// lookup finds the index position for a query: the first entry whose title
// contains the query case-insensitively, scanning in storage order.
func (r *Recommender) lookup(movieName string) (int, bool) {
	query := strings.ToLower(strings.TrimSpace(movieName))
	if query == "" {
		return 0, false
	}
	for i, entry := range r.index.entries {
		if strings.Contains(strings.ToLower(entry.Title), query) {
			if i >= len(r.index.similarity) {
				return 0, false
			}
			return i, true
		}
	}
	return 0, false
}
