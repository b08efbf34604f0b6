package store

import "context"

// GlobalStats aggregates row counts across all four collections plus the
// total of all donation amounts.
type GlobalStats struct {
	Users            int64 `json:"users"`
	Pets             int64 `json:"pets"`
	Campaigns        int64 `json:"campaigns"`
	Donations        int64 `json:"donations"`
	AdoptionRequests int64 `json:"adoption_requests"`
	TotalDonated     int64 `json:"total_donated"`
}

// StatsStore exposes the global aggregate view used by the admin dashboard.
type StatsStore interface {
	// Global computes counts across all collections and the donation sum.
	Global(ctx context.Context) (*GlobalStats, error)
}
