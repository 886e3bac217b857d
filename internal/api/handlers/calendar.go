package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
	"github.com/tradedesk/pnl-dashboard-backend/internal/calendar"
)

// CalendarHandler serves trading-calendar lookups used by the entry dialog
// to hint weekends and exchange holidays.
type CalendarHandler struct{}

// NewCalendarHandler creates a new CalendarHandler
func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{}
}

// CalendarDayResponse classifies one calendar date.
type CalendarDayResponse struct {
	Date        string `json:"date"`
	Weekend     bool   `json:"weekend"`
	Holiday     bool   `json:"holiday"`
	HolidayName string `json:"holidayName,omitempty"`
	TradingDay  bool   `json:"tradingDay"`
}

// Day handles GET requests classifying the date URL parameter (YYYY-MM-DD).
func (h *CalendarHandler) Day(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "date")
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, CalendarDayResponse{
		Date:        raw,
		Weekend:     calendar.IsWeekend(date),
		Holiday:     calendar.IsHoliday(date),
		HolidayName: calendar.HolidayName(date),
		TradingDay:  calendar.IsTradingDay(date),
	})
}
