package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validCreatePayload() *CreateRideRequestPayload {
	return &CreateRideRequestPayload{
		RideID:         primitive.NewObjectID().Hex(),
		DriverID:       primitive.NewObjectID().Hex(),
		RequesterName:  "Alice Rivera",
		RequesterPhone: "+14155550101",
		RequesterEmail: "alice@example.com",
		SeatsRequested: 2,
	}
}

func TestValidateCreateRideRequestAcceptsValidPayload(t *testing.T) {
	assert.NoError(t, ValidateCreateRideRequest(validCreatePayload()))
}

func TestValidateCreateRideRequestRejectsBadObjectID(t *testing.T) {
	payload := validCreatePayload()
	payload.RideID = "not-an-object-id"

	err := ValidateCreateRideRequest(payload)
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.Details(), "rideid")
}

func TestValidateCreateRideRequestRejectsBadEmail(t *testing.T) {
	payload := validCreatePayload()
	payload.RequesterEmail = "not-an-email"
	assert.Error(t, ValidateCreateRideRequest(payload))
}

func TestValidateCreateRideRequestSeatBounds(t *testing.T) {
	payload := validCreatePayload()
	payload.SeatsRequested = 9
	assert.Error(t, ValidateCreateRideRequest(payload))

	// Zero means "not provided"; the service defaults it to one seat.
	payload.SeatsRequested = 0
	assert.NoError(t, ValidateCreateRideRequest(payload))
}

func TestValidateRespondToRequest(t *testing.T) {
	assert.NoError(t, ValidateRespondToRequest(&RespondToRequestPayload{Response: "accepted"}))
	assert.NoError(t, ValidateRespondToRequest(&RespondToRequestPayload{Response: "rejected"}))
	assert.Error(t, ValidateRespondToRequest(&RespondToRequestPayload{Response: "cancelled"}))
	assert.Error(t, ValidateRespondToRequest(&RespondToRequestPayload{}))
}

func TestValidateCreateRideDateFormat(t *testing.T) {
	payload := &CreateRidePayload{
		From:      "Palo Alto",
		To:        "San Francisco",
		Date:      "2026-09-01",
		Time:      "08:30",
		NoOfSeats: 4,
	}
	assert.NoError(t, ValidateCreateRide(payload))

	payload.Date = "09/01/2026"
	assert.Error(t, ValidateCreateRide(payload))
}
