package service

import (
	"database/sql"
	"fmt"

	"github.com/tradedesk/pnl-dashboard-backend/internal/database"
	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
	"github.com/tradedesk/pnl-dashboard-backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

// CheckVersion returns the application version and the database migration version.
func (s *SystemService) CheckVersion() (model.VersionInfo, error) {
	dbVersion, err := database.Version(s.db)
	if err != nil {
		return model.VersionInfo{}, err
	}
	return model.VersionInfo{
		AppVersion: version.Version,
		DbVersion:  fmt.Sprintf("%d", dbVersion),
	}, nil
}
