package mocks

import (
	"context"

	"github.com/pawhaven/paw-haven-api/internal/store"
)

// MockStatsStore implements store.StatsStore for testing
type MockStatsStore struct {
	GlobalFn func(ctx context.Context) (*store.GlobalStats, error)

	Stats *store.GlobalStats
	Err   error
}

// Global implements the StatsStore interface
func (m *MockStatsStore) Global(ctx context.Context) (*store.GlobalStats, error) {
	if m.GlobalFn != nil {
		return m.GlobalFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Stats != nil {
		return m.Stats, nil
	}
	return &store.GlobalStats{}, nil
}
