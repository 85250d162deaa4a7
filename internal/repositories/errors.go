package repositories

import "errors"

// Sentinel errors shared by all repository implementations so callers can
// branch with errors.Is instead of matching message strings.
var (
	// ErrNotFound is returned when no document matches the given id or key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateAccount is returned when a username is already taken.
	ErrDuplicateAccount = errors.New("account already exists")
)
