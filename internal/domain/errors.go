package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a rejected form submission. State is left
	// untouched when it is returned.
	ErrValidation = errors.New("validation failed")
)
