package request

// UpsertEntryRequest represents the request body for recording a day's P&L.
// A date that already has an entry is overwritten.
type UpsertEntryRequest struct {
	Date string  `json:"date"`
	PnL  float64 `json:"pnl"`
}
