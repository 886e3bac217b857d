package request

// UpdateSettingsRequest represents the request body for changing the
// initial capital baseline.
type UpdateSettingsRequest struct {
	InitialCapital float64 `json:"initialCapital"`
}

// LoginRequest represents the request body for admin login.
type LoginRequest struct {
	Passcode string `json:"passcode"`
}
