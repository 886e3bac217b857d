package handlers

import (
	"net/http"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
	"github.com/tradedesk/pnl-dashboard-backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	// Check database health
	if err := h.systemService.CheckHealth(); err != nil {
		resp := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		response.RespondJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	// System is healthy
	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}

// VersionInfoResponse represents the version check response.
type VersionInfoResponse struct {
	AppVersion string `json:"app_version"`
	DbVersion  string `json:"db_version"`
}

// Version handles GET requests to retrieve version information.
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	version, err := h.systemService.CheckVersion()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to get version information", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, VersionInfoResponse{
		AppVersion: version.AppVersion,
		DbVersion:  version.DbVersion,
	})
}
