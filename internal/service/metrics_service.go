package service

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tradedesk/pnl-dashboard-backend/internal/metrics"
	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
)

// MetricsService derives the metrics report from the stored entries and
// account settings. The derivation itself lives in the metrics package; this
// service only loads the inputs and adapts the models.
type MetricsService struct {
	entryService    *EntryService
	settingsService *SettingsService
}

// NewMetricsService creates a new MetricsService with the provided service dependencies.
func NewMetricsService(entryService *EntryService, settingsService *SettingsService) *MetricsService {
	return &MetricsService{
		entryService:    entryService,
		settingsService: settingsService,
	}
}

// GetReport loads entries and settings concurrently and computes the full
// metrics report. refDate supplies "today" for the today/current-month
// metrics; callers pass the current date or any date to inspect the
// dashboard as of that day.
func (s *MetricsService) GetReport(refDate time.Time) (metrics.Report, error) {
	var entries []model.DailyEntry
	var settings model.AccountSettings

	var g errgroup.Group
	g.Go(func() error {
		var err error
		entries, err = s.entryService.GetAllEntries()
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settingsService.GetSettings()
		return err
	})
	if err := g.Wait(); err != nil {
		return metrics.Report{}, err
	}

	return metrics.Compute(toMetricEntries(entries), settings.InitialCapital, refDate), nil
}

// GetYearlyReport loads all entries and folds them into the per-year
// monthly report.
func (s *MetricsService) GetYearlyReport() (metrics.YearlyReport, error) {
	entries, err := s.entryService.GetAllEntries()
	if err != nil {
		return metrics.YearlyReport{}, err
	}
	return metrics.AggregateByYear(toMetricEntries(entries)), nil
}

func toMetricEntries(entries []model.DailyEntry) []metrics.Entry {
	converted := make([]metrics.Entry, len(entries))
	for i, e := range entries {
		converted[i] = metrics.Entry{Date: e.TradeDate, PnL: e.PnL}
	}
	return converted
}
