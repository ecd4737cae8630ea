package schema

import "time"

// CacheStatus holds status information about the memoization store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int64     `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time,omitempty"`
	OldestEntryTime time.Time `json:"oldest_entry_time,omitempty"`
	TableSizeBytes  int64     `json:"table_size_bytes,omitempty"`
}

// PositionAverage is the mean CA for one position group.
type PositionAverage struct {
	Position  string  `json:"position"`
	AverageCA float64 `json:"average_ca"`
	Players   int     `json:"players"`
}

// StoreOverview summarizes the contents of the stats store: row counts per
// required table plus average CA by position.
type StoreOverview struct {
	TableCounts      map[string]int64  `json:"table_counts"`
	PositionAverages []PositionAverage `json:"position_averages"`
}
