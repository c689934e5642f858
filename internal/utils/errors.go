package utils

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ride request workflow. Services wrap these with
// context via fmt.Errorf and %w; handlers map them to HTTP responses with
// errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrConfiguration    = errors.New("missing configuration")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrDuplicateRequest = errors.New("duplicate ride request")
	ErrAlreadyResponded = errors.New("request already responded to")
	ErrAlreadyCancelled = errors.New("request already cancelled")
	ErrPersistence      = errors.New("persistence failure")
)

func ValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func NotFoundError(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

func UnauthorizedError(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, reason)
}

func PersistenceError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, op, err)
}

// IsNotFound reports whether err is the not-found sentinel. Repositories
// return it when a referenced document no longer exists at read time.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
