package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
	"github.com/tradedesk/pnl-dashboard-backend/internal/validation"
)

// ValidateUUIDParam returns a middleware that validates the named chi URL
// parameter as a UUID before the handler runs, so handlers can assume a
// well-formed identifier.
func ValidateUUIDParam(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, param)
			if err := validation.ValidateUUID(id); err != nil {
				response.RespondError(w, http.StatusBadRequest, "invalid identifier", err.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
