package model

import "time"

// MetricsSnapshot is a materialized metrics report for one calendar date,
// stored as the JSON encoding of the full report. Snapshots are written by
// the daily scheduler; recomputing from the entries always yields the same
// report, so a snapshot is a cache, never a source of truth.
type MetricsSnapshot struct {
	ID           string    `json:"id"`
	SnapshotDate time.Time `json:"snapshotDate"`
	Report       string    `json:"report"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}
