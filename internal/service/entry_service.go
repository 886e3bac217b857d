package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tradedesk/pnl-dashboard-backend/internal/apperrors"
	"github.com/tradedesk/pnl-dashboard-backend/internal/model"
	"github.com/tradedesk/pnl-dashboard-backend/internal/repository"
)

// EntryService handles daily P&L entry business logic operations.
type EntryService struct {
	entryRepo *repository.EntryRepository
}

// NewEntryService creates a new EntryService with the provided repository dependencies.
func NewEntryService(entryRepo *repository.EntryRepository) *EntryService {
	return &EntryService{entryRepo: entryRepo}
}

// GetAllEntries retrieves every daily entry, sorted by trade date ascending.
func (s *EntryService) GetAllEntries() ([]model.DailyEntry, error) {
	return s.entryRepo.ListEntries()
}

// UpsertEntry records the P&L for one trade date. Writing a date that
// already has an entry overwrites its value.
func (s *EntryService) UpsertEntry(date time.Time, pnl float64) (model.DailyEntry, error) {
	return s.entryRepo.UpsertEntry(date, pnl)
}

// DeleteEntry removes an entry by its identifier.
func (s *EntryService) DeleteEntry(id string) error {
	return s.entryRepo.DeleteEntry(id)
}

// ImportResult summarizes a CSV import run.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportCSV reads "date,pnl" rows and upserts one entry per row. The first
// record must be a header containing the date and pnl columns (in that
// order). Rows that fail to parse are skipped and reported, not fatal, so a
// partially bad file still imports its valid rows.
func (s *EntryService) ImportCSV(reader io.Reader) (ImportResult, error) {
	r := csv.NewReader(reader)

	header, err := r.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", apperrors.ErrFailedToImportEntries, err)
	}
	if len(header) < 2 ||
		!strings.EqualFold(strings.TrimSpace(header[0]), "date") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "pnl") {
		return ImportResult{}, apperrors.ErrInvalidCSVHeaders
	}

	result := ImportResult{}
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: bad date %q", line, record[0]))
			continue
		}
		pnl, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: bad pnl %q", line, record[1]))
			continue
		}

		if _, err := s.entryRepo.UpsertEntry(date, pnl); err != nil {
			return result, fmt.Errorf("%w: line %d: %v", apperrors.ErrFailedToImportEntries, line, err)
		}
		result.Imported++
	}

	return result, nil
}
