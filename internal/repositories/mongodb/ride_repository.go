package mongodb

import (
	"context"
	"fmt"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rideRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewRideRepository(db *mongo.Database, collection string, cache CacheService) interfaces.RideRepository {
	return &rideRepository{
		collection: db.Collection(collection),
		cache:      cache,
	}
}

func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.CreatedAt = time.Now()
	ride.UpdatedAt = ride.CreatedAt

	_, err := r.collection.InsertOne(ctx, ride)
	if err != nil {
		return utils.PersistenceError("create ride", err)
	}

	// Cache rides that are open for requests
	if ride.Status == models.RideStatusActive {
		r.cacheRide(ctx, ride)
	}

	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	if ride := r.getRideFromCache(ctx, id.Hex()); ride != nil {
		return ride, nil
	}

	var ride models.Ride
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ride)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NotFoundError("ride")
		}
		return nil, utils.PersistenceError("get ride", err)
	}

	if ride.Status == models.RideStatusActive || ride.Status == models.RideStatusFull {
		r.cacheRide(ctx, &ride)
	}

	return &ride, nil
}

func (r *rideRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return utils.PersistenceError("update ride", err)
	}

	if result.MatchedCount == 0 {
		return utils.NotFoundError("ride")
	}

	r.invalidateRideCache(ctx, id.Hex())

	return nil
}

func (r *rideRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return utils.PersistenceError("delete ride", err)
	}

	r.invalidateRideCache(ctx, id.Hex())

	return nil
}

func (r *rideRepository) UpdateSeatAvailability(ctx context.Context, id primitive.ObjectID, availableSeats int, status models.RideStatus) error {
	return r.Update(ctx, id, map[string]interface{}{
		"available_seats": availableSeats,
		"status":          status,
	})
}

func (r *rideRepository) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	filter := bson.M{"driver_id": driverID}
	return r.findRidesWithFilter(ctx, filter, params)
}

func (r *rideRepository) GetAvailableRides(ctx context.Context, rideFilter *interfaces.AvailableRidesFilter) ([]*models.Ride, error) {
	filter := bson.M{
		"status": bson.M{"$in": []models.RideStatus{
			models.RideStatusActive,
			models.RideStatusFull,
		}},
	}

	if !rideFilter.ExcludeDriverID.IsZero() {
		filter["driver_id"] = bson.M{"$ne": rideFilter.ExcludeDriverID}
	}

	if rideFilter.Date != "" {
		filter["date"] = rideFilter.Date
	} else if rideFilter.DateFrom != "" {
		filter["date"] = bson.M{"$gte": rideFilter.DateFrom}
	}

	if rideFilter.CommunityID != nil {
		filter["community_id"] = *rideFilter.CommunityID
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}))
	if err != nil {
		return nil, utils.PersistenceError("find available rides", err)
	}
	defer cursor.Close(ctx)

	var rides []*models.Ride
	for cursor.Next(ctx) {
		var ride models.Ride
		if err := cursor.Decode(&ride); err != nil {
			return nil, utils.PersistenceError("decode ride", err)
		}
		rides = append(rides, &ride)
	}

	return rides, nil
}

func (r *rideRepository) findRidesWithFilter(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	if params.Search != "" {
		searchFields := []string{"from", "to", "description"}
		searchFilter := params.GetSearchFilter(searchFields)
		if len(searchFilter) > 0 {
			filter = bson.M{
				"$and": []bson.M{filter, searchFilter},
			}
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, utils.PersistenceError("count rides", err)
	}

	opts := params.GetSortOptions()
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, utils.PersistenceError("find rides", err)
	}
	defer cursor.Close(ctx)

	var rides []*models.Ride
	for cursor.Next(ctx) {
		var ride models.Ride
		if err := cursor.Decode(&ride); err != nil {
			return nil, 0, utils.PersistenceError("decode ride", err)
		}
		rides = append(rides, &ride)
	}

	return rides, total, nil
}

func (r *rideRepository) cacheRide(ctx context.Context, ride *models.Ride) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("%s%s", utils.CacheRidePrefix, ride.ID.Hex())
		r.cache.Set(ctx, cacheKey, ride, utils.RideCacheTTL)
	}
}

func (r *rideRepository) getRideFromCache(ctx context.Context, rideID string) *models.Ride {
	if r.cache == nil {
		return nil
	}

	cacheKey := fmt.Sprintf("%s%s", utils.CacheRidePrefix, rideID)
	var ride models.Ride
	err := r.cache.Get(ctx, cacheKey, &ride)
	if err != nil {
		return nil
	}

	return &ride
}

func (r *rideRepository) invalidateRideCache(ctx context.Context, rideID string) {
	if r.cache != nil {
		cacheKey := fmt.Sprintf("%s%s", utils.CacheRidePrefix, rideID)
		r.cache.Delete(ctx, cacheKey)
	}
}
