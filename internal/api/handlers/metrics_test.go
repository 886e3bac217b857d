package handlers

import (
	"database/sql"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tradedesk/pnl-dashboard-backend/internal/metrics"
	"github.com/tradedesk/pnl-dashboard-backend/internal/testutil"
)

func TestMetricsHandler_Report(t *testing.T) {
	setupHandler := func(t *testing.T) (*MetricsHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ms := testutil.NewTestMetricsService(db)
		ss := testutil.NewTestSnapshotService(db)
		return NewMetricsHandler(ms, ss), db
	}

	t.Run("returns full report", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateSettings(t, db, 1000)
		testutil.CreateEntry(t, db, "2024-01-02", 100)
		testutil.CreateEntry(t, db, "2024-01-03", -50)

		req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var report metrics.Report
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode report: %v", err)
		}

		if report.CurrentEquity != 1050 {
			t.Errorf("Expected current equity 1050, got %v", report.CurrentEquity)
		}
		if len(report.EquityCurve) != 2 {
			t.Errorf("Expected 2 equity points, got %d", len(report.EquityCurve))
		}
		if len(report.DrawdownCurve) != 2 {
			t.Errorf("Expected 2 drawdown points, got %d", len(report.DrawdownCurve))
		}
	})

	t.Run("date parameter sets the reference date", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateSettings(t, db, 1000)
		testutil.CreateEntry(t, db, "2024-01-02", 100)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/metrics",
			map[string]string{"date": "2024-01-02"})
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var report metrics.Report
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode report: %v", err)
		}

		if report.TodayProfit != 100 {
			t.Errorf("Expected today profit 100 as of 2024-01-02, got %v", report.TodayProfit)
		}
	})

	t.Run("active_only drops zero-pnl points from both curves", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateSettings(t, db, 1000)
		testutil.CreateEntry(t, db, "2024-01-02", 100)
		testutil.CreateEntry(t, db, "2024-01-03", 0)
		testutil.CreateEntry(t, db, "2024-01-04", -50)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/metrics",
			map[string]string{"active_only": "true"})
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var report metrics.Report
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode report: %v", err)
		}

		if len(report.EquityCurve) != 2 {
			t.Fatalf("Expected 2 equity points after filter, got %d", len(report.EquityCurve))
		}
		if len(report.DrawdownCurve) != 2 {
			t.Fatalf("Expected 2 drawdown points after filter, got %d", len(report.DrawdownCurve))
		}
		for i, p := range report.EquityCurve {
			if p.PnL == 0 {
				t.Errorf("Point %d: zero-pnl point survived the filter", i)
			}
		}
		// Scalar metrics are computed before filtering
		if report.TotalActiveDays != 2 {
			t.Errorf("Expected 2 active days, got %d", report.TotalActiveDays)
		}
	})

	t.Run("encodes infinite ratios as Infinity strings", func(t *testing.T) {
		handler, db := setupHandler(t)

		// All wins: profit factor and risk/reward divide by zero losses
		testutil.CreateSettings(t, db, 1000)
		testutil.CreateEntry(t, db, "2024-01-02", 100)
		testutil.CreateEntry(t, db, "2024-01-03", 200)

		req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		body := w.Body.String()
		if !strings.Contains(body, `"profitFactor":"Infinity"`) {
			t.Errorf("Expected profitFactor encoded as \"Infinity\", body: %s", body)
		}

		var report metrics.Report
		if err := json.NewDecoder(strings.NewReader(body)).Decode(&report); err != nil {
			t.Fatalf("Failed to decode report: %v", err)
		}
		if !math.IsInf(report.ProfitFactor, 1) {
			t.Errorf("Expected +Inf profit factor after round trip, got %v", report.ProfitFactor)
		}
	})

	t.Run("returns 400 for malformed date parameter", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/metrics",
			map[string]string{"date": "not-a-date"})
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 500 when database is closed", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/metrics", nil)
		w := httptest.NewRecorder()

		handler.Report(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestMetricsHandler_Monthly(t *testing.T) {
	setupHandler := func(t *testing.T) (*MetricsHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ms := testutil.NewTestMetricsService(db)
		ss := testutil.NewTestSnapshotService(db)
		return NewMetricsHandler(ms, ss), db
	}

	t.Run("returns yearly aggregation", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateEntry(t, db, "2024-01-02", 100)
		testutil.CreateEntry(t, db, "2024-02-05", -30)

		req := httptest.NewRequest(http.MethodGet, "/api/metrics/monthly", nil)
		w := httptest.NewRecorder()

		handler.Monthly(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var report metrics.YearlyReport
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode yearly report: %v", err)
		}

		if len(report.Years) != 1 || report.Years[0] != 2024 {
			t.Fatalf("Expected years [2024], got %v", report.Years)
		}
		if got := report.MonthTotals[2024][0]; got != 100 {
			t.Errorf("Expected January total 100, got %v", got)
		}
		if got := report.MonthTotals[2024][1]; got != -30 {
			t.Errorf("Expected February total -30, got %v", got)
		}
	})
}

func TestMetricsHandler_Snapshots(t *testing.T) {
	t.Run("returns stored snapshots most recent first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		ms := testutil.NewTestMetricsService(db)
		snapSvc := testutil.NewTestSnapshotService(db)
		handler := NewMetricsHandler(ms, snapSvc)

		testutil.CreateEntry(t, db, "2024-01-02", 100)
		for _, d := range []string{"2024-01-02", "2024-01-03"} {
			if err := snapSvc.CaptureSnapshot(mustDay(t, d)); err != nil {
				t.Fatalf("CaptureSnapshot(%s) returned unexpected error: %v", d, err)
			}
		}

		req := httptest.NewRequest(http.MethodGet, "/api/metrics/snapshots", nil)
		w := httptest.NewRecorder()

		handler.Snapshots(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var snapshots []SnapshotResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&snapshots)

		if len(snapshots) != 2 {
			t.Fatalf("Expected 2 snapshots, got %d", len(snapshots))
		}
		if snapshots[0].Date != "2024-01-03" || snapshots[1].Date != "2024-01-02" {
			t.Errorf("Expected snapshots sorted descending, got %s, %s",
				snapshots[0].Date, snapshots[1].Date)
		}
		if !strings.Contains(snapshots[0].Report, "equityCurve") {
			t.Error("Expected snapshot report to carry the report JSON")
		}
	})
}
