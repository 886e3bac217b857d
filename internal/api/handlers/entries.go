package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/request"
	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
	"github.com/tradedesk/pnl-dashboard-backend/internal/apperrors"
	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
	"github.com/tradedesk/pnl-dashboard-backend/internal/validation"
)

// EntryHandler handles daily P&L entry HTTP requests
type EntryHandler struct {
	entryService *service.EntryService
}

// NewEntryHandler creates a new EntryHandler
func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// EntryResponse represents a daily entry in API responses.
type EntryResponse struct {
	ID   string  `json:"id"`
	Date string  `json:"date"`
	PnL  float64 `json:"pnl"`
}

// Entries handles GET requests listing all daily entries, sorted by trade
// date ascending.
func (h *EntryHandler) Entries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryService.GetAllEntries()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to retrieve entries", err.Error())
		return
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = EntryResponse{
			ID:   e.ID,
			Date: e.TradeDate.Format("2006-01-02"),
			PnL:  e.PnL,
		}
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// UpsertEntry handles POST requests recording the P&L for one trade date.
// A date that already has an entry is overwritten, never duplicated.
func (h *EntryHandler) UpsertEntry(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	date, err := validation.ParseEntryDate(req.Date)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}
	if err := validation.ValidatePnL(req.PnL); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.entryService.UpsertEntry(date, req.PnL)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to save entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, EntryResponse{
		ID:   entry.ID,
		Date: entry.TradeDate.Format("2006-01-02"),
		PnL:  entry.PnL,
	})
}

// DeleteEntry handles DELETE requests removing an entry by identifier.
// The entryId URL parameter is validated as a UUID by middleware.
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "entryId")

	if err := h.entryService.DeleteEntry(id); err != nil {
		if errors.Is(err, apperrors.ErrEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, "entry not found", nil)
			return
		}
		response.RespondError(w, http.StatusInternalServerError,
			"failed to delete entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}

// ImportEntries handles POST requests importing entries from a CSV body
// with a "date,pnl" header. Bad rows are skipped and reported.
func (h *EntryHandler) ImportEntries(w http.ResponseWriter, r *http.Request) {
	result, err := h.entryService.ImportCSV(r.Body)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCSVHeaders) {
			response.RespondError(w, http.StatusBadRequest, "invalid CSV headers",
				`expected "date,pnl"`)
			return
		}
		response.RespondError(w, http.StatusInternalServerError,
			"failed to import entries", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
