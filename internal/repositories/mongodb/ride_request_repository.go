package mongodb

import (
	"context"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rideRequestRepository struct {
	collection *mongo.Collection
}

func NewRideRequestRepository(db *mongo.Database, collection string) interfaces.RideRequestRepository {
	return &rideRequestRepository{
		collection: db.Collection(collection),
	}
}

func (r *rideRequestRepository) Create(ctx context.Context, request *models.RideRequest) error {
	request.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return utils.PersistenceError("create ride request", err)
	}

	return nil
}

func (r *rideRequestRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error) {
	var request models.RideRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError("ride request")
		}
		return nil, utils.PersistenceError("get ride request", err)
	}

	return &request, nil
}

func (r *rideRequestRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return utils.PersistenceError("update ride request", err)
	}

	if result.MatchedCount == 0 {
		return utils.NotFoundError("ride request")
	}

	return nil
}

func (r *rideRequestRepository) GetActiveByRideAndRequester(ctx context.Context, rideID, requesterID primitive.ObjectID) (*models.RideRequest, error) {
	filter := bson.M{
		"ride_id":      rideID,
		"requester_id": requesterID,
		"status":       bson.M{"$ne": models.RequestStatusCancelled},
	}

	var request models.RideRequest
	err := r.collection.FindOne(ctx, filter, options.FindOne().SetSort(bson.D{{Key: "requested_at", Value: -1}})).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, utils.PersistenceError("get active ride request", err)
	}

	return &request, nil
}

func (r *rideRequestRepository) GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error) {
	filter := bson.M{
		"ride_id": rideID,
		"status":  bson.M{"$ne": models.RequestStatusCancelled},
	}

	return r.findRequests(ctx, filter, options.Find().SetSort(bson.D{{Key: "requested_at", Value: -1}}))
}

func (r *rideRequestRepository) GetPendingByRideExcluding(ctx context.Context, rideID, excludeID primitive.ObjectID) ([]*models.RideRequest, error) {
	filter := bson.M{
		"ride_id": rideID,
		"status":  models.RequestStatusPending,
		"_id":     bson.M{"$ne": excludeID},
	}

	return r.findRequests(ctx, filter, options.Find())
}

func (r *rideRequestRepository) GetByRequester(ctx context.Context, requesterID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	filter := bson.M{"requester_id": requesterID}
	return r.findRequestsWithCount(ctx, filter, params)
}

func (r *rideRequestRepository) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	filter := bson.M{"driver_id": driverID}
	return r.findRequestsWithCount(ctx, filter, params)
}

func (r *rideRequestRepository) findRequests(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.RideRequest, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, utils.PersistenceError("find ride requests", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.RideRequest
	for cursor.Next(ctx) {
		var request models.RideRequest
		if err := cursor.Decode(&request); err != nil {
			return nil, utils.PersistenceError("decode ride request", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}

func (r *rideRequestRepository) findRequestsWithCount(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, utils.PersistenceError("count ride requests", err)
	}

	opts := options.Find().
		SetSkip(int64(params.GetSkip())).
		SetLimit(int64(params.GetLimit())).
		SetSort(bson.D{{Key: "requested_at", Value: -1}})

	requests, err := r.findRequests(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}
