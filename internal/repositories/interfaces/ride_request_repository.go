package interfaces

import (
	"context"

	"ridepool/internal/models"
	"ridepool/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideRequestRepository interface {
	Create(ctx context.Context, request *models.RideRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// GetActiveByRideAndRequester returns the requester's non-cancelled
	// request for the ride, or (nil, nil) when there is none.
	GetActiveByRideAndRequester(ctx context.Context, rideID, requesterID primitive.ObjectID) (*models.RideRequest, error)

	// GetByRide returns every non-cancelled request for the ride.
	GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error)

	// GetPendingByRideExcluding returns all pending requests for the ride
	// other than excludeID. Feeds the cascading rejection after an accept.
	GetPendingByRideExcluding(ctx context.Context, rideID, excludeID primitive.ObjectID) ([]*models.RideRequest, error)

	GetByRequester(ctx context.Context, requesterID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error)
	GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error)
}
