package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAlreadyApplied         = errors.New("already applied to this job")
	ErrJobAlreadySaved        = errors.New("job already saved")
)

// internalErr wraps a store-layer failure so the diagnostic message
// survives while callers can still match on ErrInternal.
func internalErr(err error) error {
	if err == nil {
		return ErrInternal
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
