package resumes

import "errors"

var (
	// ErrNotFound indicates the resume id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a malformed upload request.
	ErrInvalidInput = errors.New("invalid input")
)
