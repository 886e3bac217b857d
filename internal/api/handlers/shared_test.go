package handlers

import (
	"testing"
	"time"
)

// mustDay parses a YYYY-MM-DD test date.
func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("Bad test date %q: %v", s, err)
	}
	return d
}
