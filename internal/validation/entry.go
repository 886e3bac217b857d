package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/tradedesk/pnl-dashboard-backend/internal/apperrors"
)

// ParseEntryDate validates and parses a trade date in YYYY-MM-DD format.
func ParseEntryDate(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", apperrors.ErrInvalidDate)
	}
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", apperrors.ErrInvalidDate, date)
	}
	return parsed, nil
}

// ValidatePnL rejects non-finite P&L values. Zero is valid: it records an
// explicit no-trade day.
func ValidatePnL(pnl float64) error {
	if math.IsNaN(pnl) || math.IsInf(pnl, 0) {
		return fmt.Errorf("%w: must be a finite number", apperrors.ErrInvalidPnL)
	}
	return nil
}

// ValidateInitialCapital enforces the positive-baseline precondition of the
// metrics engine at the write path.
func ValidateInitialCapital(capital float64) error {
	if math.IsNaN(capital) || math.IsInf(capital, 0) || capital <= 0 {
		return apperrors.ErrNonPositiveCapital
	}
	return nil
}
