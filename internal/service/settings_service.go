package service

import (
	"errors"

	"github.com/tradedesk/pnl-dashboard-backend/internal/apperrors"
	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
	"github.com/tradedesk/pnl-dashboard-backend/internal/repository"
)

// SettingsService handles account settings business logic operations.
type SettingsService struct {
	settingsRepo *repository.SettingsRepository
}

// NewSettingsService creates a new SettingsService with the provided repository dependencies.
func NewSettingsService(settingsRepo *repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the account settings, substituting the default initial
// capital when none have been stored yet. The metrics engine requires a
// positive baseline, so absence is never surfaced to callers.
func (s *SettingsService) GetSettings() (model.AccountSettings, error) {
	settings, err := s.settingsRepo.GetSettings()
	if errors.Is(err, apperrors.ErrSettingsNotFound) {
		return model.AccountSettings{InitialCapital: model.DefaultInitialCapital}, nil
	}
	if err != nil {
		return model.AccountSettings{}, err
	}
	return settings, nil
}

// UpdateSettings stores a new initial capital value.
func (s *SettingsService) UpdateSettings(initialCapital float64) (model.AccountSettings, error) {
	if initialCapital <= 0 {
		return model.AccountSettings{}, apperrors.ErrNonPositiveCapital
	}
	return s.settingsRepo.UpdateSettings(initialCapital)
}
