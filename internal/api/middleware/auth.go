package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/tradedesk/pnl-dashboard-backend/internal/api/response"
)

// tokenTTL bounds how long an issued session token stays valid.
const tokenTTL = 24 * time.Hour

// TokenAuth issues and verifies fernet session tokens gating write access.
// Tokens are handed out by the login endpoint after a passcode check and
// presented on the X-Auth-Token header.
type TokenAuth struct {
	keys []*fernet.Key
}

// NewTokenAuth builds a TokenAuth from the base64 fernet key in secret.
// With an empty secret a random key is generated, so tokens stop working
// across restarts; set AUTH_SECRET for durable sessions.
func NewTokenAuth(secret string) (*TokenAuth, error) {
	if secret == "" {
		var key fernet.Key
		if err := key.Generate(); err != nil {
			return nil, fmt.Errorf("failed to generate auth key: %w", err)
		}
		return &TokenAuth{keys: []*fernet.Key{&key}}, nil
	}

	keys, err := fernet.DecodeKeys(secret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode auth secret: %w", err)
	}
	return &TokenAuth{keys: keys}, nil
}

// IssueToken creates a new session token.
func (a *TokenAuth) IssueToken() (string, error) {
	token, err := fernet.EncryptAndSign([]byte("admin"), a.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(token), nil
}

// VerifyToken reports whether the token was issued by this TokenAuth and
// has not expired.
func (a *TokenAuth) VerifyToken(token string) bool {
	return fernet.VerifyAndDecrypt([]byte(token), tokenTTL, a.keys) != nil
}

// RequireAuth rejects requests that do not carry a valid session token on
// the X-Auth-Token header.
func (a *TokenAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Auth-Token")
		if token == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing auth token")
			return
		}
		if !a.VerifyToken(token) {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Auth token is invalid or expired")
			return
		}
		next.ServeHTTP(w, r)
	})
}
