// CineVerse - Movie Discovery and Recommendation Backend
// Copyright 2026 CineVerse contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cineverse-app/cineverse

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordUpstreamRequest(t *testing.T) {
	before := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("/movie/popular", "200"))

	RecordUpstreamRequest("/movie/popular", 200, 120*time.Millisecond)

	after := testutil.ToFloat64(UpstreamRequestsTotal.WithLabelValues("/movie/popular", "200"))
	if after != before+1 {
		t.Errorf("Expected counter to increment by 1, got %v -> %v", before, after)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("Expected active requests %v, got %v", base+1, got)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("Expected active requests %v, got %v", base, got)
	}
}

func TestRecommendArtifactsGauge(t *testing.T) {
	RecommendArtifactsLoaded.Set(1)
	if got := testutil.ToFloat64(RecommendArtifactsLoaded); got != 1 {
		t.Errorf("Expected gauge 1, got %v", got)
	}
	RecommendArtifactsLoaded.Set(0)
	if got := testutil.ToFloat64(RecommendArtifactsLoaded); got != 0 {
		t.Errorf("Expected gauge 0, got %v", got)
	}
}
