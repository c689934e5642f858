package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedErrorsMatchSentinels(t *testing.T) {
	assert.ErrorIs(t, ValidationError("seats must be at least %d", 1), ErrValidation)
	assert.ErrorIs(t, UnauthorizedError(ErrMsgNotRideOwner), ErrUnauthorized)
	assert.ErrorIs(t, PersistenceError("create ride", errors.New("timeout")), ErrPersistence)
	assert.True(t, IsNotFound(NotFoundError("ride")))
}

func TestSentinelsSurviveFurtherWrapping(t *testing.T) {
	err := fmt.Errorf("responding to request: %w", NotFoundError("ride request"))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(ValidationError("bad input")))
}

func TestErrorMessagesCarryContext(t *testing.T) {
	err := ValidationError("seats requested must be at least 1")
	assert.Contains(t, err.Error(), "seats requested must be at least 1")

	err = NotFoundError("ride")
	assert.Equal(t, "ride not found", err.Error())
}
