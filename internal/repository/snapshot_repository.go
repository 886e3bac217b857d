package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
)

// SnapshotRepository provides data access methods for the metrics_snapshot
// table, which materializes one full report JSON per calendar date.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// SaveSnapshot stores the report JSON for one date, overwriting any snapshot
// already stored for that date.
func (r *SnapshotRepository) SaveSnapshot(date time.Time, reportJSON string) error {
	_, err := r.db.Exec(`
		INSERT INTO metrics_snapshot (id, snapshot_date, report)
		VALUES (?, ?, ?)
		ON CONFLICT(snapshot_date) DO UPDATE SET
			report = excluded.report,
			created_at = CURRENT_TIMESTAMP
	`, uuid.New().String(), date.Format("2006-01-02"), reportJSON)
	if err != nil {
		return fmt.Errorf("failed to upsert metrics_snapshot row: %w", err)
	}
	return nil
}

// ListSnapshots retrieves all stored snapshots, most recent first.
func (r *SnapshotRepository) ListSnapshots() ([]model.MetricsSnapshot, error) {
	rows, err := r.db.Query(`
		SELECT id, snapshot_date, report, created_at
		FROM metrics_snapshot
		ORDER BY snapshot_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query metrics_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.MetricsSnapshot{}

	for rows.Next() {
		var dateStr, createdAtStr string
		var s model.MetricsSnapshot

		if err := rows.Scan(&s.ID, &dateStr, &s.Report, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan metrics_snapshot results: %w", err)
		}
		s.SnapshotDate, err = ParseTime(dateStr)
		if err != nil || s.SnapshotDate.IsZero() {
			return nil, fmt.Errorf("failed to parse snapshot date: %w", err)
		}
		s.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating metrics_snapshot table: %w", err)
	}

	return snapshots, nil
}
