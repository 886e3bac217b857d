package testutil

import (
	"database/sql"

	"github.com/tradedesk/pnl-dashboard-backend/internal/repository"
	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
)

// Service constructors for tests. Each wires the repositories a service
// needs against the given test database.

// NewTestEntryService creates an EntryService for testing.
func NewTestEntryService(db *sql.DB) *service.EntryService {
	return service.NewEntryService(repository.NewEntryRepository(db))
}

// NewTestSettingsService creates a SettingsService for testing.
func NewTestSettingsService(db *sql.DB) *service.SettingsService {
	return service.NewSettingsService(repository.NewSettingsRepository(db))
}

// NewTestMetricsService creates a MetricsService with its entry and settings
// dependencies wired against the same database.
func NewTestMetricsService(db *sql.DB) *service.MetricsService {
	return service.NewMetricsService(NewTestEntryService(db), NewTestSettingsService(db))
}

// NewTestSnapshotService creates a SnapshotService for testing.
func NewTestSnapshotService(db *sql.DB) *service.SnapshotService {
	return service.NewSnapshotService(repository.NewSnapshotRepository(db), NewTestMetricsService(db))
}

// NewTestSystemService creates a SystemService for testing.
func NewTestSystemService(db *sql.DB) *service.SystemService {
	return service.NewSystemService(db)
}
