package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
	"github.com/tradedesk/pnl-dashboard-backend/internal/repository"
)

// SnapshotService materializes the daily metrics report. The scheduler calls
// CaptureSnapshot once a day; snapshots are a derived cache and can always be
// regenerated from the entries.
type SnapshotService struct {
	snapshotRepo   *repository.SnapshotRepository
	metricsService *MetricsService
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(snapshotRepo *repository.SnapshotRepository, metricsService *MetricsService) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:   snapshotRepo,
		metricsService: metricsService,
	}
}

// CaptureSnapshot computes the report as of date and stores its JSON
// encoding, overwriting any snapshot already stored for that date.
func (s *SnapshotService) CaptureSnapshot(date time.Time) error {
	report, err := s.metricsService.GetReport(date)
	if err != nil {
		return fmt.Errorf("failed to compute report for snapshot: %w", err)
	}

	encoded, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report for snapshot: %w", err)
	}

	return s.snapshotRepo.SaveSnapshot(date, string(encoded))
}

// GetAllSnapshots retrieves stored snapshots, most recent first.
func (s *SnapshotService) GetAllSnapshots() ([]model.MetricsSnapshot, error) {
	return s.snapshotRepo.ListSnapshots()
}
