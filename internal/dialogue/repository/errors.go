package repository

import "errors"

// ErrNotFound is returned when no session exists for the user.
var ErrNotFound = errors.New("session not found")
