package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradedesk/pnl-dashboard-backend/internal/apperrors"
	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
)

// SettingsRepository provides data access methods for the account_settings
// table. The table holds at most one row.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository with the provided database connection.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings returns the stored account settings.
// Returns apperrors.ErrSettingsNotFound when no row has been written yet.
func (r *SettingsRepository) GetSettings() (model.AccountSettings, error) {
	var s model.AccountSettings
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRow(`
		SELECT id, initial_capital, created_at, updated_at
		FROM account_settings
		LIMIT 1
	`).Scan(&s.ID, &s.InitialCapital, &createdAtStr, &updatedAtStr)
	if err == sql.ErrNoRows {
		return model.AccountSettings{}, apperrors.ErrSettingsNotFound
	}
	if err != nil {
		return model.AccountSettings{}, fmt.Errorf("failed to query account_settings table: %w", err)
	}

	s.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.AccountSettings{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.AccountSettings{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return s, nil
}

// UpdateSettings stores the initial capital, creating the settings row on
// first write. Returns the stored settings.
func (r *SettingsRepository) UpdateSettings(initialCapital float64) (model.AccountSettings, error) {
	existing, err := r.GetSettings()
	switch err {
	case nil:
		_, err = r.db.Exec(`
			UPDATE account_settings
			SET initial_capital = ?, updated_at = CURRENT_TIMESTAMP
			WHERE id = ?
		`, initialCapital, existing.ID)
		if err != nil {
			return model.AccountSettings{}, fmt.Errorf("failed to update account_settings row: %w", err)
		}
	case apperrors.ErrSettingsNotFound:
		_, err = r.db.Exec(`
			INSERT INTO account_settings (id, initial_capital)
			VALUES (?, ?)
		`, uuid.New().String(), initialCapital)
		if err != nil {
			return model.AccountSettings{}, fmt.Errorf("failed to insert account_settings row: %w", err)
		}
	default:
		return model.AccountSettings{}, err
	}

	return r.GetSettings()
}
