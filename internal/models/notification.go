package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	NotificationTypeRideRequest     NotificationType = "ride_request"
	NotificationTypeRequestAccepted NotificationType = "request_accepted"
	NotificationTypeRequestRejected NotificationType = "request_rejected"
	NotificationTypeRideCancelled   NotificationType = "ride_cancelled"
)

// Notification is a fire-and-forget message persisted for a user. Delivery is
// the client's concern; records past ExpiresAt are filtered out of listings
// rather than purged.
type Notification struct {
	ID        primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID     `json:"user_id" bson:"user_id" validate:"required"`
	Type      NotificationType       `json:"type" bson:"type" validate:"required"`
	Title     string                 `json:"title" bson:"title" validate:"required"`
	Message   string                 `json:"message" bson:"message" validate:"required"`
	Data      map[string]interface{} `json:"data" bson:"data"`
	Read      bool                   `json:"read" bson:"read"`
	ReadAt    *time.Time             `json:"read_at,omitempty" bson:"read_at,omitempty"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time              `json:"expires_at" bson:"expires_at"`
}
