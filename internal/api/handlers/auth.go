package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/middleware"
	"github.com/tradedesk/pnl-dashboard-backend/internal/api/request"
	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
)

// AuthHandler handles admin login requests
type AuthHandler struct {
	tokenAuth *middleware.TokenAuth
	passcode  string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(tokenAuth *middleware.TokenAuth, passcode string) *AuthHandler {
	return &AuthHandler{
		tokenAuth: tokenAuth,
		passcode:  passcode,
	}
}

// LoginResponse carries the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles POST requests exchanging the admin passcode for a session
// token. With no passcode configured, login is disabled entirely and the
// API stays read-only.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.passcode == "" {
		response.RespondError(w, http.StatusInternalServerError,
			"login unavailable", "Authentication not loaded")
		return
	}

	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Passcode), []byte(h.passcode)) != 1 {
		response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid passcode")
		return
	}

	token, err := h.tokenAuth.IssueToken()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError,
			"failed to issue token", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, LoginResponse{Token: token})
}
