package interfaces

import (
	"context"

	"ridepool/internal/models"
	"ridepool/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailableRidesFilter scopes the ride browse query. ExcludeDriverID hides the
// caller's own offers; Date narrows to a single day while DateFrom keeps
// everything from that day onward.
type AvailableRidesFilter struct {
	ExcludeDriverID primitive.ObjectID
	Date            string
	DateFrom        string
	CommunityID     *primitive.ObjectID
}

type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// UpdateSeatAvailability persists a seat-ledger write: the clamped seat
	// count together with the status it implies.
	UpdateSeatAvailability(ctx context.Context, id primitive.ObjectID, availableSeats int, status models.RideStatus) error

	GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	GetAvailableRides(ctx context.Context, filter *AvailableRidesFilter) ([]*models.Ride, error)
}
