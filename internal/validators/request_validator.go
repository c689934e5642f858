package validators

// CreateRideRequestPayload is the wire shape for requesting seats on a ride.
// The requester identity comes from the auth context, never from the body.
type CreateRideRequestPayload struct {
	RideID          string `json:"ride_id" validate:"required,object_id"`
	DriverID        string `json:"driver_id" validate:"required,object_id"`
	RequesterName   string `json:"requester_name" validate:"required,min=1,max=100"`
	RequesterPhone  string `json:"requester_phone" validate:"required,min=5,max=20"`
	RequesterEmail  string `json:"requester_email" validate:"required,email"`
	SeatsRequested  int    `json:"seats_requested" validate:"omitempty,min=1,max=8"`
	Message         string `json:"message" validate:"omitempty,max=500"`
	PickupLocation  string `json:"pickup_location" validate:"omitempty,max=255"`
	DropoffLocation string `json:"dropoff_location" validate:"omitempty,max=255"`
}

type RespondToRequestPayload struct {
	Response string `json:"response" validate:"required,oneof=accepted rejected"`
}

func ValidateCreateRideRequest(payload *CreateRideRequestPayload) error {
	return ValidateStruct(payload)
}

func ValidateRespondToRequest(payload *RespondToRequestPayload) error {
	return ValidateStruct(payload)
}
