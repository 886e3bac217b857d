package handlers

import (
	"net/http"
	"time"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
	"github.com/tradedesk/pnl-dashboard-backend/internal/metrics"
	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
)

// MetricsHandler handles metrics report HTTP requests
type MetricsHandler struct {
	metricsService  *service.MetricsService
	snapshotService *service.SnapshotService
}

// NewMetricsHandler creates a new MetricsHandler
func NewMetricsHandler(metricsService *service.MetricsService, snapshotService *service.SnapshotService) *MetricsHandler {
	return &MetricsHandler{
		metricsService:  metricsService,
		snapshotService: snapshotService,
	}
}

// Report handles GET requests for the full metrics report.
//
// Query parameters:
//   - date: optional YYYY-MM-DD reference date for the today/current-month
//     metrics; defaults to the current UTC date.
//   - active_only: "true" drops zero-P&L points from both curves, the shape
//     the dashboard charts plot.
func (h *MetricsHandler) Report(w http.ResponseWriter, r *http.Request) {
	refDate := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.RespondError(w, http.StatusBadRequest,
				"invalid date parameter", err.Error())
			return
		}
		refDate = parsed
	}

	report, err := h.metricsService.GetReport(refDate)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to compute metrics", err.Error())
		return
	}

	if r.URL.Query().Get("active_only") == "true" {
		report = filterActiveDays(report)
	}

	response.RespondJSON(w, http.StatusOK, report)
}

// Monthly handles GET requests for the per-year monthly P&L report.
func (h *MetricsHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	report, err := h.metricsService.GetYearlyReport()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to compute monthly report", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}

// SnapshotResponse represents a stored metrics snapshot in API responses.
// Report carries the raw JSON produced when the snapshot was captured.
type SnapshotResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Report string `json:"report"`
}

// Snapshots handles GET requests listing materialized daily reports, most
// recent first.
func (h *MetricsHandler) Snapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.snapshotService.GetAllSnapshots()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to retrieve snapshots", err.Error())
		return
	}

	resp := make([]SnapshotResponse, len(snapshots))
	for i, s := range snapshots {
		resp[i] = SnapshotResponse{
			ID:     s.ID,
			Date:   s.SnapshotDate.Format("2006-01-02"),
			Report: s.Report,
		}
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// filterActiveDays removes zero-P&L points from both curves while keeping
// them index-aligned. Scalar metrics are unchanged: the filter is purely a
// display shape.
func filterActiveDays(report metrics.Report) metrics.Report {
	equity := make([]metrics.EquityPoint, 0, len(report.EquityCurve))
	drawdown := make([]metrics.DrawdownPoint, 0, len(report.DrawdownCurve))
	for i, p := range report.EquityCurve {
		if p.PnL != 0 {
			equity = append(equity, p)
			drawdown = append(drawdown, report.DrawdownCurve[i])
		}
	}
	report.EquityCurve = equity
	report.DrawdownCurve = drawdown
	return report
}
