package domain

import (
	"errors"

	"golang.org/x/xerrors"
)

var (
	// ErrInternalServerError will throw if any Internal Server Error happens
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item does not exist
	ErrNotFound = errors.New("requested item is not found")
	// ErrValidation will throw if the given request body or params are malformed
	ErrValidation = errors.New("given param is not valid")
	// ErrPermission will throw if the caller is not the required owner/seller/buyer
	ErrPermission = errors.New("operation not permitted")
	// ErrConflict will throw if the operation is not valid in the current state
	ErrConflict = errors.New("operation conflicts with current state")
	// ErrConcurrency will throw if an atomic update lost a race, the caller may retry
	ErrConcurrency = errors.New("concurrent update detected")
)

// ErrWithReason attaches a human readable reason to one of the
// sentinel kinds above. errors.Is still matches the kind.
func ErrWithReason(kind error, reason string) error {
	return xerrors.Errorf("%s: %w", reason, kind)
}
