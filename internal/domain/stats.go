package domain

import "time"

// SourceStats holds per-source statistics for one reconciliation pass.
type SourceStats struct {
	SourceID string
	Fetched  int
	Novel    int
	Inserted int
	Pushed   int
	Errors   int
	Skipped  bool
}

// RunStats aggregates one full pass over the source catalog.
type RunStats struct {
	Sources     int
	Novel       int
	Pushed      int
	Errors      int
	NewsTrimmed int
	Duration    time.Duration
}
