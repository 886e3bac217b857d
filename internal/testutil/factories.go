package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
)

// EntryBuilder provides a fluent interface for creating test daily entries.
//
// Example usage:
//
//	// Simple creation with defaults
//	entry := testutil.NewEntry().Build(t, db)
//
//	// Customized entry
//	entry := testutil.NewEntry().
//	    WithDate("2024-01-15").
//	    WithPnL(-250.5).
//	    Build(t, db)
type EntryBuilder struct {
	ID   string
	Date string
	PnL  float64
}

// NewEntry creates an EntryBuilder with sensible defaults.
func NewEntry() *EntryBuilder {
	return &EntryBuilder{
		ID:   uuid.New().String(),
		Date: "2024-01-02",
		PnL:  100,
	}
}

// WithID sets a custom ID.
func (b *EntryBuilder) WithID(id string) *EntryBuilder {
	b.ID = id
	return b
}

// WithDate sets the trade date (YYYY-MM-DD).
func (b *EntryBuilder) WithDate(date string) *EntryBuilder {
	b.Date = date
	return b
}

// WithPnL sets the P&L value.
func (b *EntryBuilder) WithPnL(pnl float64) *EntryBuilder {
	b.PnL = pnl
	return b
}

// Build creates the entry in the database and returns it.
func (b *EntryBuilder) Build(t *testing.T, db *sql.DB) model.DailyEntry {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO daily_pnl (id, trade_date, pnl)
		VALUES (?, ?, ?)
	`, b.ID, b.Date, b.PnL)
	if err != nil {
		t.Fatalf("Failed to create test entry: %v", err)
	}

	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		t.Fatalf("Bad test entry date %q: %v", b.Date, err)
	}

	return model.DailyEntry{
		ID:        b.ID,
		TradeDate: date,
		PnL:       b.PnL,
	}
}

// Convenience functions

// CreateEntry creates an entry for the given date and P&L.
//
// Example usage:
//
//	entry := testutil.CreateEntry(t, db, "2024-01-15", 120.5)
func CreateEntry(t *testing.T, db *sql.DB, date string, pnl float64) model.DailyEntry {
	t.Helper()
	return NewEntry().WithDate(date).WithPnL(pnl).Build(t, db)
}

// CreateEntries creates one entry per (date, pnl) pair.
func CreateEntries(t *testing.T, db *sql.DB, entries map[string]float64) {
	t.Helper()
	for date, pnl := range entries {
		CreateEntry(t, db, date, pnl)
	}
}

// CreateSettings stores account settings with the given initial capital.
func CreateSettings(t *testing.T, db *sql.DB, initialCapital float64) model.AccountSettings {
	t.Helper()

	id := uuid.New().String()
	_, err := db.Exec(`
		INSERT INTO account_settings (id, initial_capital)
		VALUES (?, ?)
	`, id, initialCapital)
	if err != nil {
		t.Fatalf("Failed to create test settings: %v", err)
	}

	return model.AccountSettings{ID: id, InitialCapital: initialCapital}
}
