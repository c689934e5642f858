package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

type CreateRidePayload struct {
	From        string  `json:"from" validate:"required,min=2,max=255"`
	To          string  `json:"to" validate:"required,min=2,max=255"`
	Date        string  `json:"date" validate:"required,ride_date"`
	Time        string  `json:"time" validate:"required"`
	NoOfSeats   int     `json:"no_of_seats" validate:"required,min=1,max=8"`
	Price       float64 `json:"price" validate:"omitempty,min=0"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	CarModel    string  `json:"car_model" validate:"omitempty,max=100"`
	CommunityID string  `json:"community_id" validate:"omitempty,object_id"`
}

type AvailableRidesPayload struct {
	DateFilter string  `form:"filter" validate:"omitempty,oneof=all today tomorrow"`
	Latitude   float64 `form:"lat" validate:"omitempty,min=-90,max=90"`
	Longitude  float64 `form:"lng" validate:"omitempty,min=-180,max=180"`
	RadiusKM   float64 `form:"radius_km" validate:"omitempty,min=0,max=50"`
}

func ValidateCreateRide(payload *CreateRidePayload) error {
	return ValidateStruct(payload)
}

func ValidateAvailableRides(payload *AvailableRidesPayload) error {
	return ValidateStruct(payload)
}

func validateRideDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}
