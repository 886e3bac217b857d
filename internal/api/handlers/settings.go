package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/request"
	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
	"github.com/tradedesk/pnl-dashboard-backend/internal/apperrors"
	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
	"github.com/tradedesk/pnl-dashboard-backend/internal/validation"
)

// SettingsHandler handles account settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// SettingsResponse represents the account settings in API responses.
type SettingsResponse struct {
	ID             string  `json:"id,omitempty"`
	InitialCapital float64 `json:"initialCapital"`
}

// Settings handles GET requests for the account settings. When no settings
// have been stored the default initial capital is returned with an empty id.
func (h *SettingsHandler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetSettings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to retrieve settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, SettingsResponse{
		ID:             settings.ID,
		InitialCapital: settings.InitialCapital,
	})
}

// UpdateSettings handles PUT requests changing the initial capital.
// Every percentage metric is derived from this baseline, so the change
// retroactively reshapes the whole dashboard.
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateInitialCapital(req.InitialCapital); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(req.InitialCapital)
	if err != nil {
		if errors.Is(err, apperrors.ErrNonPositiveCapital) {
			response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError,
			"failed to update settings", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, SettingsResponse{
		ID:             settings.ID,
		InitialCapital: settings.InitialCapital,
	})
}
