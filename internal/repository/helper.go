package repository

import (
	"fmt"
	"time"
)

// timestampFormat matches SQLite's CURRENT_TIMESTAMP output.
const timestampFormat = "2006-01-02 15:04:05"

// ParseTime parses a date string in "2006-01-02", SQLite timestamp or
// RFC3339 format, normalized to UTC.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", timestampFormat, time.RFC3339} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", str)
}
