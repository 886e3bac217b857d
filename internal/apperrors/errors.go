package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrEntryNotFound indicates that a daily P&L entry with the given ID does not exist.
	ErrEntryNotFound = errors.New("daily entry not found")

	// ErrSettingsNotFound indicates that no account settings row has been stored yet.
	// Callers that read settings substitute the default initial capital instead of
	// surfacing this.
	ErrSettingsNotFound = errors.New("account settings not found")

	// ErrSnapshotNotFound indicates no materialized report exists for the given date.
	ErrSnapshotNotFound = errors.New("metrics snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidDate indicates that a date value is missing or not in YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPnL indicates that a P&L value is missing or not a finite number.
	ErrInvalidPnL = errors.New("invalid pnl value")

	// ErrNonPositiveCapital indicates that the initial capital is zero or negative.
	// The metrics engine assumes a positive baseline; this is enforced at the write path.
	ErrNonPositiveCapital = errors.New("initial capital must be positive")

	// ErrInvalidPasscode indicates a failed login attempt.
	ErrInvalidPasscode = errors.New("invalid passcode")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveEntries   = errors.New("failed to retrieve daily entries")
	ErrFailedToRetrieveSettings  = errors.New("failed to retrieve account settings")
	ErrFailedToRetrieveSnapshots = errors.New("failed to retrieve metrics snapshots")
	ErrFailedToComputeMetrics    = errors.New("failed to compute metrics")
	ErrFailedToImportEntries     = errors.New("failed to import entries")
	ErrInvalidCSVHeaders         = errors.New("invalid CSV headers")
)
