package applications

import "errors"

var (
	// ErrNotFound indicates the application does not exist.
	ErrNotFound = errors.New("application not found")
	// ErrInvalidInput indicates a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)
