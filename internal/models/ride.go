package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusFull      RideStatus = "full"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// Ride is a driver-offered trip with a fixed seat capacity.
// AvailableSeats and Status (active/full) are maintained by the seat ledger;
// completed/cancelled transitions belong to the driver-facing ride flows.
type Ride struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	DriverID       primitive.ObjectID  `json:"driver_id" bson:"driver_id" validate:"required"`
	DriverName     string              `json:"driver_name" bson:"driver_name"`
	From           string              `json:"from" bson:"from" validate:"required"`
	To             string              `json:"to" bson:"to" validate:"required"`
	FromCoords     *GeoPoint           `json:"from_coords,omitempty" bson:"from_coords,omitempty"`
	ToCoords       *GeoPoint           `json:"to_coords,omitempty" bson:"to_coords,omitempty"`
	Date           string              `json:"date" bson:"date" validate:"required"` // YYYY-MM-DD
	Time           string              `json:"time" bson:"time" validate:"required"`
	NoOfSeats      int                 `json:"no_of_seats" bson:"no_of_seats" validate:"required,min=1"`
	AvailableSeats int                 `json:"available_seats" bson:"available_seats"`
	Price          float64             `json:"price,omitempty" bson:"price,omitempty"`
	CommunityID    *primitive.ObjectID `json:"community_id,omitempty" bson:"community_id,omitempty"`
	Description    string              `json:"description,omitempty" bson:"description,omitempty"`
	CarModel       string              `json:"car_model,omitempty" bson:"car_model,omitempty"`
	Status         RideStatus          `json:"status" bson:"status"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`
}

// DeriveSeatStatus returns the status implied by a seat count: full at zero,
// active otherwise. Completed and cancelled rides never pass through here.
func DeriveSeatStatus(availableSeats int) RideStatus {
	if availableSeats == 0 {
		return RideStatusFull
	}
	return RideStatusActive
}
