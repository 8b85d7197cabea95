package repository

import "errors"

// ErrNotFound is returned when no estimation result exists for the user.
var ErrNotFound = errors.New("estimation result not found")
