// Package apperr holds the error taxonomy shared by the lesson catalog and the
// order ledger. Domain packages wrap these sentinels and the HTTP layer maps
// them to status codes with errors.Is.
package apperr

import "errors"

var (
	ErrStoreUnavailable  = errors.New("database connection is not available")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrNotFound          = errors.New("not found")
)
