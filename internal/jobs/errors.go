package jobs

import "errors"

var (
	// ErrNotFound indicates the job description does not exist.
	ErrNotFound = errors.New("job description not found")
	// ErrInvalidInput indicates a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)
