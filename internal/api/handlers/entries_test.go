package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
	"github.com/tradedesk/pnl-dashboard-backend/internal/testutil"
)

func TestEntryHandler_Entries(t *testing.T) {
	setupHandler := func(t *testing.T) (*EntryHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		es := testutil.NewTestEntryService(db)
		return NewEntryHandler(es), db
	}

	t.Run("returns empty array when no entries exist", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
		w := httptest.NewRecorder()

		handler.Entries(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var entries []EntryResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&entries)

		if len(entries) != 0 {
			t.Errorf("Expected 0 entries, got %d", len(entries))
		}
	})

	t.Run("returns entries sorted by date", func(t *testing.T) {
		handler, db := setupHandler(t)

		testutil.CreateEntry(t, db, "2024-01-05", -50)
		testutil.CreateEntry(t, db, "2024-01-02", 100)

		req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
		w := httptest.NewRecorder()

		handler.Entries(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var entries []EntryResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&entries)

		if len(entries) != 2 {
			t.Fatalf("Expected 2 entries, got %d", len(entries))
		}
		if entries[0].Date != "2024-01-02" || entries[1].Date != "2024-01-05" {
			t.Errorf("Expected dates sorted ascending, got %s, %s", entries[0].Date, entries[1].Date)
		}
	})

	t.Run("returns 500 when database is closed", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
		w := httptest.NewRecorder()

		handler.Entries(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEntryHandler_UpsertEntry(t *testing.T) {
	setupHandler := func(t *testing.T) (*EntryHandler, *service.EntryService) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		es := testutil.NewTestEntryService(db)
		return NewEntryHandler(es), es
	}

	t.Run("creates entry from valid request", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := `{"date": "2024-01-02", "pnl": 150.5}`
		req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.UpsertEntry(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var entry EntryResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&entry)

		if entry.Date != "2024-01-02" {
			t.Errorf("Expected date 2024-01-02, got %s", entry.Date)
		}
		if entry.PnL != 150.5 {
			t.Errorf("Expected pnl 150.5, got %v", entry.PnL)
		}
		if entry.ID == "" {
			t.Error("Expected generated id in response")
		}
	})

	t.Run("overwrites entry for existing date", func(t *testing.T) {
		handler, svc := setupHandler(t)

		for _, body := range []string{
			`{"date": "2024-01-02", "pnl": 100}`,
			`{"date": "2024-01-02", "pnl": -75}`,
		} {
			req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
			w := httptest.NewRecorder()
			handler.UpsertEntry(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
			}
		}

		entries, err := svc.GetAllEntries()
		if err != nil {
			t.Fatalf("GetAllEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("Expected 1 entry after overwrite, got %d", len(entries))
		}
		if entries[0].PnL != -75 {
			t.Errorf("Expected pnl -75 after overwrite, got %v", entries[0].PnL)
		}
	})

	t.Run("returns 400 for invalid JSON body", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader("{not json"))
		w := httptest.NewRecorder()

		handler.UpsertEntry(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for malformed date", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := `{"date": "02-01-2024", "pnl": 100}`
		req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.UpsertEntry(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for non-finite pnl", func(t *testing.T) {
		handler, _ := setupHandler(t)

		// 1e999 overflows float64 during decoding
		body := `{"date": "2024-01-02", "pnl": 1e999}`
		req := httptest.NewRequest(http.MethodPost, "/api/entries", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.UpsertEntry(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEntryHandler_DeleteEntry(t *testing.T) {
	setupHandler := func(t *testing.T) (*EntryHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		es := testutil.NewTestEntryService(db)
		return NewEntryHandler(es), db
	}

	t.Run("deletes existing entry", func(t *testing.T) {
		handler, db := setupHandler(t)

		entry := testutil.CreateEntry(t, db, "2024-01-02", 100)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/entries/"+entry.ID,
			map[string]string{"entryId": entry.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteEntry(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for unknown entry", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := "00000000-0000-0000-0000-000000000000"
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/entries/"+id,
			map[string]string{"entryId": id},
		)
		w := httptest.NewRecorder()

		handler.DeleteEntry(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestEntryHandler_ImportEntries(t *testing.T) {
	setupHandler := func(t *testing.T) (*EntryHandler, *service.EntryService) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		es := testutil.NewTestEntryService(db)
		return NewEntryHandler(es), es
	}

	t.Run("imports CSV body", func(t *testing.T) {
		handler, svc := setupHandler(t)

		csvData := "date,pnl\n2024-01-02,100\n2024-01-03,-50\n"
		req := httptest.NewRequest(http.MethodPost, "/api/entries/import", strings.NewReader(csvData))
		w := httptest.NewRecorder()

		handler.ImportEntries(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var result service.ImportResult
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&result)

		if result.Imported != 2 {
			t.Errorf("Expected 2 imported rows, got %d", result.Imported)
		}

		entries, err := svc.GetAllEntries()
		if err != nil {
			t.Fatalf("GetAllEntries() returned unexpected error: %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("Expected 2 entries, got %d", len(entries))
		}
	})

	t.Run("returns 400 for wrong headers", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/entries/import", strings.NewReader("foo,bar\n1,2\n"))
		w := httptest.NewRecorder()

		handler.ImportEntries(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}
