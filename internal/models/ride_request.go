package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// RideRequest is a rider's bid for seats on a ride. The requester contact
// fields are a snapshot taken at request time, not a live reference; this
// keeps the driver inbox render a single read.
type RideRequest struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RideID          primitive.ObjectID `json:"ride_id" bson:"ride_id" validate:"required"`
	RequesterID     primitive.ObjectID `json:"requester_id" bson:"requester_id" validate:"required"`
	RequesterName   string             `json:"requester_name" bson:"requester_name" validate:"required"`
	RequesterPhone  string             `json:"requester_phone" bson:"requester_phone" validate:"required"`
	RequesterEmail  string             `json:"requester_email" bson:"requester_email" validate:"required,email"`
	DriverID        primitive.ObjectID `json:"driver_id" bson:"driver_id" validate:"required"`
	Status          RequestStatus      `json:"status" bson:"status"`
	SeatsRequested  int                `json:"seats_requested" bson:"seats_requested" validate:"required,min=1"`
	Message         string             `json:"message,omitempty" bson:"message,omitempty"`
	PickupLocation  string             `json:"pickup_location,omitempty" bson:"pickup_location,omitempty"`
	DropoffLocation string             `json:"dropoff_location,omitempty" bson:"dropoff_location,omitempty"`
	RequestedAt     time.Time          `json:"requested_at" bson:"requested_at"`
	RespondedAt     *time.Time         `json:"responded_at,omitempty" bson:"responded_at,omitempty"`
}

// CanTransitionTo encodes the request state machine. Pending requests may be
// accepted, rejected or cancelled; an accepted request may still be cancelled
// by the rider backing out. Everything else is invalid.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestStatusPending:
		return next == RequestStatusAccepted || next == RequestStatusRejected || next == RequestStatusCancelled
	case RequestStatusAccepted:
		return next == RequestStatusCancelled
	default:
		return false
	}
}

// IsActive reports whether the request still occupies the (ride, requester)
// slot for duplicate checking purposes.
func (s RequestStatus) IsActive() bool {
	return s == RequestStatusPending || s == RequestStatusAccepted
}
