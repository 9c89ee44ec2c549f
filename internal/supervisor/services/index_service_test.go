// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/ashanr/student-decision-support/internal/recommend"
)

type mockIndexBuilder struct {
	builds   atomic.Int32
	buildErr error
	size     int
}

func (m *mockIndexBuilder) BuildIndex(ctx context.Context) error {
	m.builds.Add(1)
	return m.buildErr
}

func (m *mockIndexBuilder) Status() recommend.EngineStatus {
	return recommend.EngineStatus{IndexBuilt: m.buildErr == nil, IndexSize: m.size}
}

func TestIndexRefreshService_ImplementsSutureService(t *testing.T) {
	var _ suture.Service = (*IndexRefreshService)(nil)
}

func TestIndexRefreshService_BuildsOnStartup(t *testing.T) {
	builder := &mockIndexBuilder{size: 12}
	svc := NewIndexRefreshService(builder, IndexRefreshConfig{
		BuildOnStartup: true,
		Interval:       time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve() did not return after cancellation")
	}

	if got := builder.builds.Load(); got != 1 {
		t.Errorf("builds = %d, want 1", got)
	}
}

func TestIndexRefreshService_SurvivesFailedBuild(t *testing.T) {
	builder := &mockIndexBuilder{buildErr: errors.New("dataset unavailable")}
	svc := NewIndexRefreshService(builder, IndexRefreshConfig{
		BuildOnStartup: true,
		Interval:       time.Hour,
	}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	// A failed initial build must not terminate the service.
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("Serve() = %v, want context.Canceled", err)
	}
	if got := builder.builds.Load(); got != 1 {
		t.Errorf("builds = %d, want 1", got)
	}
}

func TestIndexRefreshService_ConfigDefaults(t *testing.T) {
	svc := NewIndexRefreshService(&mockIndexBuilder{}, IndexRefreshConfig{Interval: time.Second}, zerolog.Nop())
	if svc.config.Interval != 6*time.Hour {
		t.Errorf("Interval = %v, want fallback to 6h for sub-minute values", svc.config.Interval)
	}
	if svc.config.BuildTimeout != 5*time.Minute {
		t.Errorf("BuildTimeout = %v, want 5m", svc.config.BuildTimeout)
	}
}
