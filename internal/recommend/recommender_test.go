// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package recommend

import (
	"os"
	"path/filepath"
	"testing"
)

// testIndex builds an in-memory index without touching the filesystem.
// Entry ids are assigned 1..N in storage order.
func testIndex(titles []string, similarity [][]float64) *Index {
	entries := make([]Entry, len(titles))
	for i, title := range titles {
		entries[i] = Entry{ID: i + 1, Title: title}
	}
	return NewIndex(entries, similarity)
}

func TestRecommendOrdersBySimilarity(t *testing.T) {
	idx := testIndex(
		[]string{"Alpha", "Beta", "Gamma", "Delta"},
		[][]float64{
			{1.0, 0.2, 0.9, 0.5},
			{0.2, 1.0, 0.1, 0.3},
			{0.9, 0.1, 1.0, 0.4},
			{0.5, 0.3, 0.4, 1.0},
		},
	)
	r := NewRecommender(idx, 5)

	got := r.Recommend("Alpha", 0)
	want := []int{3, 4, 2} // Gamma, Delta, Beta
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected id %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRecommendNeverIncludesQueriedTitle(t *testing.T) {
	idx := testIndex(
		[]string{"Alpha", "Beta", "Gamma"},
		[][]float64{
			{1.0, 0.9, 0.8},
			{0.9, 1.0, 0.7},
			{0.8, 0.7, 1.0},
		},
	)
	r := NewRecommender(idx, 5)

	for _, entry := range idx.Entries() {
		for _, rec := range r.Recommend(entry.Title, 0) {
			if rec == entry.ID {
				t.Errorf("Recommendation list for %q contains its own id %d", entry.Title, entry.ID)
			}
		}
	}
}

func TestRecommendRespectsK(t *testing.T) {
	titles := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	similarity := make([][]float64, len(titles))
	for i := range similarity {
		similarity[i] = make([]float64, len(titles))
		for j := range similarity[i] {
			similarity[i][j] = float64(j) / 10
		}
		similarity[i][i] = 1.0
	}
	r := NewRecommender(testIndex(titles, similarity), 5)

	if got := r.Recommend("A", 0); len(got) != 5 {
		t.Errorf("Expected 5 recommendations from default k, got %d", len(got))
	}
	if got := r.Recommend("A", 2); len(got) != 2 {
		t.Errorf("Expected 2 recommendations with explicit k, got %d", len(got))
	}
	if got := r.Recommend("A", 100); len(got) != 7 {
		t.Errorf("Expected k capped at candidate count, got %d", len(got))
	}
}

func TestRecommendCaseInsensitiveSubstringMatch(t *testing.T) {
	idx := testIndex(
		[]string{"The Dark Knight", "Inception", "Interstellar"},
		[][]float64{
			{1.0, 0.6, 0.3},
			{0.6, 1.0, 0.8},
			{0.3, 0.8, 1.0},
		},
	)
	r := NewRecommender(idx, 2)

	got := r.Recommend("dark knight", 0)
	if len(got) == 0 || got[0] != 2 {
		t.Errorf("Expected substring match to resolve The Dark Knight and rank Inception first, got %v", got)
	}
}

func TestRecommendFirstMatchWinsInStorageOrder(t *testing.T) {
	// Both titles contain "part"; the earlier one must win even though the
	// later one is a closer textual match.
	idx := testIndex(
		[]string{"The Party", "Part Two", "Other"},
		[][]float64{
			{1.0, 0.1, 0.9},
			{0.1, 1.0, 0.2},
			{0.9, 0.2, 1.0},
		},
	)
	r := NewRecommender(idx, 1)

	got := r.Recommend("part", 0)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("Expected lookup to resolve to The Party (first match) and recommend Other, got %v", got)
	}
}

func TestRecommendUnknownTitle(t *testing.T) {
	idx := testIndex([]string{"Alpha"}, [][]float64{{1.0}})
	r := NewRecommender(idx, 5)

	got := r.Recommend("Zeta", 0)
	if got == nil {
		t.Fatal("Expected empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("Expected no recommendations for unknown title, got %v", got)
	}
}

func TestRecommendBlankQuery(t *testing.T) {
	idx := testIndex([]string{"Alpha"}, [][]float64{{1.0}})
	r := NewRecommender(idx, 5)

	if got := r.Recommend("   ", 0); len(got) != 0 {
		t.Errorf("Expected no recommendations for blank query, got %v", got)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	idx := testIndex(
		[]string{"A", "B", "C", "D"},
		[][]float64{
			{1.0, 0.5, 0.5, 0.5},
			{0.5, 1.0, 0.5, 0.5},
			{0.5, 0.5, 1.0, 0.5},
			{0.5, 0.5, 0.5, 1.0},
		},
	)
	r := NewRecommender(idx, 3)

	first := r.Recommend("A", 0)
	for i := 0; i < 10; i++ {
		again := r.Recommend("A", 0)
		if len(again) != len(first) {
			t.Fatal("Expected deterministic results")
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("Run %d: expected %v, got %v (tie-break not stable)", i, first, again)
			}
		}
	}
}

func TestEmptyIndexAnswersEverythingEmpty(t *testing.T) {
	r := NewRecommender(NewEmptyIndex(), 5)
	if r.Ready() {
		t.Error("Expected empty index to report not ready")
	}
	if got := r.Recommend("anything", 0); len(got) != 0 {
		t.Errorf("Expected empty results from empty index, got %v", got)
	}
}

func TestLoadIndexFromFiles(t *testing.T) {
	dir := t.TempDir()
	titlesPath := filepath.Join(dir, "titles.json")
	matrixPath := filepath.Join(dir, "similarity.json")

	writeFile(t, titlesPath, `[{"id":10,"title":"Alpha"},{"id":20,"title":"Beta"}]`)
	writeFile(t, matrixPath, `[[1.0,0.4],[0.4,1.0]]`)

	idx := LoadIndex(titlesPath, matrixPath)
	if idx.Size() != 2 {
		t.Fatalf("Expected 2 titles, got %d", idx.Size())
	}

	r := NewRecommender(idx, 5)
	if got := r.Recommend("Alpha", 0); len(got) != 1 || got[0] != 20 {
		t.Errorf("Expected loaded index to recommend id 20, got %v", got)
	}
}

func TestLoadIndexMissingFilesDegradesToEmpty(t *testing.T) {
	idx := LoadIndex("/nonexistent/titles.json", "/nonexistent/similarity.json")
	if idx.Size() != 0 {
		t.Errorf("Expected empty index for missing artifacts, got size %d", idx.Size())
	}
}

func TestLoadIndexRejectsShapeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		titles string
		matrix string
	}{
		{"row count mismatch", `[{"id":1,"title":"A"},{"id":2,"title":"B"}]`, `[[1.0,0.5]]`},
		{"ragged row", `[{"id":1,"title":"A"},{"id":2,"title":"B"}]`, `[[1.0,0.5],[0.5]]`},
		{"empty titles", `[]`, `[]`},
		{"malformed titles", `{not json`, `[[1.0]]`},
		{"malformed matrix", `[{"id":1,"title":"A"}]`, `[[oops`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			titlesPath := filepath.Join(dir, "titles.json")
			matrixPath := filepath.Join(dir, "similarity.json")
			writeFile(t, titlesPath, tt.titles)
			writeFile(t, matrixPath, tt.matrix)

			idx := LoadIndex(titlesPath, matrixPath)
			if idx.Size() != 0 {
				t.Errorf("Expected degraded empty index, got size %d", idx.Size())
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
