package model

import "time"

// DailyEntry represents one recorded trading day: a signed P&L value keyed
// by calendar date. At most one entry exists per date; writes for an
// existing date overwrite it. A PnL of zero marks a no-trade day.
type DailyEntry struct {
	ID        string    `json:"id"`
	TradeDate time.Time `json:"tradeDate"`
	PnL       float64   `json:"pnl"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
