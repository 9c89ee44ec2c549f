// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/countries", "200"))
	ObserveAPIRequest("GET", "/api/v1/countries", 200, 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/countries", "200"))
	if after != before+1 {
		t.Errorf("counter = %f, want %f", after, before+1)
	}
}

func TestObserveRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsServed.WithLabelValues("true"))
	ObserveRecommendation(true, 10*time.Millisecond)
	after := testutil.ToFloat64(RecommendationsServed.WithLabelValues("true"))
	if after != before+1 {
		t.Errorf("counter = %f, want %f", after, before+1)
	}
}

func TestObserveIndexRebuild(t *testing.T) {
	ObserveIndexRebuild(nil, 250)
	if got := testutil.ToFloat64(IndexSize); got != 250 {
		t.Errorf("IndexSize = %f, want 250", got)
	}

	beforeErr := testutil.ToFloat64(IndexRebuilds.WithLabelValues("error"))
	ObserveIndexRebuild(errors.New("boom"), 0)
	if got := testutil.ToFloat64(IndexRebuilds.WithLabelValues("error")); got != beforeErr+1 {
		t.Errorf("error counter = %f, want %f", got, beforeErr+1)
	}
	// Failed rebuilds must not clobber the size gauge.
	if got := testutil.ToFloat64(IndexSize); got != 250 {
		t.Errorf("IndexSize = %f after failed rebuild, want 250", got)
	}
}
