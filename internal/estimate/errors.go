package estimate

import "errors"

// Domain errors
var (
	// ErrResultNotFound - no estimation cycle exists for the user
	ErrResultNotFound = errors.New("estimate: result not found")

	// ErrResultNotReady - full estimate still generating; shrunk needs it
	ErrResultNotReady = errors.New("estimate: result not ready")

	// ErrUserRequired - user identifier missing
	ErrUserRequired = errors.New("estimate: user_id is required")
)
