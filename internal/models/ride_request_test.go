package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusTransitions(t *testing.T) {
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusAccepted))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusRejected))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusCancelled))
	assert.True(t, RequestStatusAccepted.CanTransitionTo(RequestStatusCancelled))

	assert.False(t, RequestStatusAccepted.CanTransitionTo(RequestStatusRejected))
	assert.False(t, RequestStatusRejected.CanTransitionTo(RequestStatusAccepted))
	assert.False(t, RequestStatusRejected.CanTransitionTo(RequestStatusCancelled))
	assert.False(t, RequestStatusCancelled.CanTransitionTo(RequestStatusPending))
	assert.False(t, RequestStatusCancelled.CanTransitionTo(RequestStatusCancelled))
}

func TestRequestStatusIsActive(t *testing.T) {
	assert.True(t, RequestStatusPending.IsActive())
	assert.True(t, RequestStatusAccepted.IsActive())
	assert.False(t, RequestStatusRejected.IsActive())
	assert.False(t, RequestStatusCancelled.IsActive())
}

func TestDeriveSeatStatus(t *testing.T) {
	assert.Equal(t, RideStatusFull, DeriveSeatStatus(0))
	assert.Equal(t, RideStatusActive, DeriveSeatStatus(1))
	assert.Equal(t, RideStatusActive, DeriveSeatStatus(4))
}
