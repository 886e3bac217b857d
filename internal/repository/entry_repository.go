package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tradedesk/pnl-dashboard-backend/internal/apperrors"
	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
)

// EntryRepository provides data access methods for the daily_pnl table.
type EntryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new EntryRepository with the provided database connection.
func NewEntryRepository(db *sql.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// ListEntries retrieves all daily P&L entries sorted by trade date ascending.
func (r *EntryRepository) ListEntries() ([]model.DailyEntry, error) {
	rows, err := r.db.Query(`
		SELECT id, trade_date, pnl, created_at, updated_at
		FROM daily_pnl
		ORDER BY trade_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily_pnl table: %w", err)
	}
	defer rows.Close()

	entries := []model.DailyEntry{}

	for rows.Next() {
		var dateStr, createdAtStr, updatedAtStr string
		var e model.DailyEntry

		if err := rows.Scan(&e.ID, &dateStr, &e.PnL, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan daily_pnl results: %w", err)
		}
		e.TradeDate, err = ParseTime(dateStr)
		if err != nil || e.TradeDate.IsZero() {
			return nil, fmt.Errorf("failed to parse trade date: %w", err)
		}
		e.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		e.UpdatedAt, err = ParseTime(updatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}

		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily_pnl table: %w", err)
	}

	return entries, nil
}

// GetEntryByDate returns the entry for one trade date.
// Returns apperrors.ErrEntryNotFound when no entry exists for that date.
func (r *EntryRepository) GetEntryByDate(date time.Time) (model.DailyEntry, error) {
	var e model.DailyEntry
	var dateStr string

	err := r.db.QueryRow(`
		SELECT id, trade_date, pnl
		FROM daily_pnl
		WHERE trade_date = ?
	`, date.Format("2006-01-02")).Scan(&e.ID, &dateStr, &e.PnL)
	if err == sql.ErrNoRows {
		return model.DailyEntry{}, apperrors.ErrEntryNotFound
	}
	if err != nil {
		return model.DailyEntry{}, fmt.Errorf("failed to query daily_pnl table: %w", err)
	}

	e.TradeDate, err = ParseTime(dateStr)
	if err != nil {
		return model.DailyEntry{}, fmt.Errorf("failed to parse trade date: %w", err)
	}
	return e, nil
}

// UpsertEntry writes a (date, pnl) pair. A second write for an existing
// trade date overwrites its pnl instead of inserting a duplicate row; this
// keeps the per-date uniqueness invariant the metrics engine relies on.
// Returns the stored entry.
func (r *EntryRepository) UpsertEntry(date time.Time, pnl float64) (model.DailyEntry, error) {
	id := uuid.New().String()
	dateStr := date.Format("2006-01-02")

	_, err := r.db.Exec(`
		INSERT INTO daily_pnl (id, trade_date, pnl)
		VALUES (?, ?, ?)
		ON CONFLICT(trade_date) DO UPDATE SET
			pnl = excluded.pnl,
			updated_at = CURRENT_TIMESTAMP
	`, id, dateStr, pnl)
	if err != nil {
		return model.DailyEntry{}, fmt.Errorf("failed to upsert daily_pnl row: %w", err)
	}

	return r.GetEntryByDate(date)
}

// DeleteEntry removes an entry by its identifier.
// Returns apperrors.ErrEntryNotFound when no row matches.
func (r *EntryRepository) DeleteEntry(id string) error {
	result, err := r.db.Exec(`DELETE FROM daily_pnl WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete daily_pnl row: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEntryNotFound
	}
	return nil
}
