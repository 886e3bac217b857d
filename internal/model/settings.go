package model

import "time"

// DefaultInitialCapital is the equity baseline used when no account settings
// row has been stored yet.
const DefaultInitialCapital = 100000

// AccountSettings holds the single per-account configuration row. All
// percentage metrics are derived against InitialCapital at read time, so
// changing it retroactively changes every percentage in history.
type AccountSettings struct {
	ID             string    `json:"id"`
	InitialCapital float64   `json:"initialCapital"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}
