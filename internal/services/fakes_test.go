package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
)

// In-memory repository doubles. They mirror the store-facing semantics the
// services rely on (not-found sentinels, update maps, query filters) without
// touching MongoDB.

type fakeRideRepo struct {
	mu    sync.Mutex
	rides map[primitive.ObjectID]*models.Ride

	failSeatUpdate bool
}

func newFakeRideRepo() *fakeRideRepo {
	return &fakeRideRepo{rides: make(map[primitive.ObjectID]*models.Ride)}
}

func (f *fakeRideRepo) put(ride *models.Ride) *models.Ride {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ride.ID.IsZero() {
		ride.ID = primitive.NewObjectID()
	}
	f.rides[ride.ID] = ride
	return ride
}

func (f *fakeRideRepo) Create(ctx context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.CreatedAt = time.Now()
	ride.UpdatedAt = ride.CreatedAt
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rides[ride.ID] = ride
	return nil
}

func (f *fakeRideRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ride, ok := f.rides[id]
	if !ok {
		return nil, utils.NotFoundError("ride")
	}
	copied := *ride
	return &copied, nil
}

func (f *fakeRideRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ride, ok := f.rides[id]
	if !ok {
		return utils.NotFoundError("ride")
	}
	if status, ok := updates["status"].(models.RideStatus); ok {
		ride.Status = status
	}
	ride.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRideRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rides, id)
	return nil
}

func (f *fakeRideRepo) UpdateSeatAvailability(ctx context.Context, id primitive.ObjectID, availableSeats int, status models.RideStatus) error {
	if f.failSeatUpdate {
		return utils.PersistenceError("update ride", errors.New("write failed"))
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ride, ok := f.rides[id]
	if !ok {
		return utils.NotFoundError("ride")
	}
	ride.AvailableSeats = availableSeats
	ride.Status = status
	ride.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRideRepo) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rides []*models.Ride
	for _, ride := range f.rides {
		if ride.DriverID == driverID {
			copied := *ride
			rides = append(rides, &copied)
		}
	}
	return rides, int64(len(rides)), nil
}

func (f *fakeRideRepo) GetAvailableRides(ctx context.Context, filter *interfaces.AvailableRidesFilter) ([]*models.Ride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rides []*models.Ride
	for _, ride := range f.rides {
		if ride.Status != models.RideStatusActive && ride.Status != models.RideStatusFull {
			continue
		}
		if !filter.ExcludeDriverID.IsZero() && ride.DriverID == filter.ExcludeDriverID {
			continue
		}
		if filter.Date != "" && ride.Date != filter.Date {
			continue
		}
		if filter.Date == "" && filter.DateFrom != "" && ride.Date < filter.DateFrom {
			continue
		}
		if filter.CommunityID != nil && (ride.CommunityID == nil || *ride.CommunityID != *filter.CommunityID) {
			continue
		}
		copied := *ride
		rides = append(rides, &copied)
	}
	return rides, nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]*models.RideRequest

	failUpdateFor map[primitive.ObjectID]bool
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{
		requests:      make(map[primitive.ObjectID]*models.RideRequest),
		failUpdateFor: make(map[primitive.ObjectID]bool),
	}
}

func (f *fakeRequestRepo) put(request *models.RideRequest) *models.RideRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	f.requests[request.ID] = request
	return request
}

func (f *fakeRequestRepo) get(id primitive.ObjectID) *models.RideRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	request := f.requests[id]
	copied := *request
	return &copied
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *models.RideRequest) error {
	request.ID = primitive.NewObjectID()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, utils.NotFoundError("ride request")
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdateFor[id] {
		return utils.PersistenceError("update ride request", errors.New("write failed"))
	}
	request, ok := f.requests[id]
	if !ok {
		return utils.NotFoundError("ride request")
	}
	if status, ok := updates["status"].(models.RequestStatus); ok {
		request.Status = status
	}
	if respondedAt, ok := updates["responded_at"].(time.Time); ok {
		request.RespondedAt = &respondedAt
	}
	return nil
}

func (f *fakeRequestRepo) GetActiveByRideAndRequester(ctx context.Context, rideID, requesterID primitive.ObjectID) (*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *models.RideRequest
	for _, request := range f.requests {
		if request.RideID != rideID || request.RequesterID != requesterID {
			continue
		}
		if request.Status == models.RequestStatusCancelled {
			continue
		}
		if latest == nil || request.RequestedAt.After(latest.RequestedAt) {
			latest = request
		}
	}
	if latest == nil {
		return nil, nil
	}
	copied := *latest
	return &copied, nil
}

func (f *fakeRequestRepo) GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*models.RideRequest
	for _, request := range f.requests {
		if request.RideID == rideID && request.Status != models.RequestStatusCancelled {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) GetPendingByRideExcluding(ctx context.Context, rideID, excludeID primitive.ObjectID) ([]*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*models.RideRequest
	for _, request := range f.requests {
		if request.RideID == rideID && request.Status == models.RequestStatusPending && request.ID != excludeID {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) GetByRequester(ctx context.Context, requesterID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*models.RideRequest
	for _, request := range f.requests {
		if request.RequesterID == requesterID {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, int64(len(requests)), nil
}

func (f *fakeRequestRepo) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*models.RideRequest
	for _, request := range f.requests {
		if request.DriverID == driverID {
			copied := *request
			requests = append(requests, &copied)
		}
	}
	return requests, int64(len(requests)), nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications map[primitive.ObjectID]*models.Notification

	failCreate bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{notifications: make(map[primitive.ObjectID]*models.Notification)}
}

func (f *fakeNotificationRepo) forUser(userID primitive.ObjectID) []*models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	var notifications []*models.Notification
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			copied := *notification
			notifications = append(notifications, &copied)
		}
	}
	return notifications
}

func (f *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if f.failCreate {
		return utils.PersistenceError("create notification", errors.New("write failed"))
	}
	notification.ID = primitive.NewObjectID()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifications[notification.ID] = notification
	return nil
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notification, ok := f.notifications[id]
	if !ok {
		return nil, utils.NotFoundError("notification")
	}
	copied := *notification
	return &copied, nil
}

func (f *fakeNotificationRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	var notifications []*models.Notification
	for _, notification := range f.notifications {
		if notification.UserID == userID && notification.ExpiresAt.After(now) {
			copied := *notification
			notifications = append(notifications, &copied)
		}
	}
	return notifications, int64(len(notifications)), nil
}

func (f *fakeNotificationRepo) GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, notification := range f.notifications {
		if notification.UserID == userID && !notification.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	notification, ok := f.notifications[id]
	if !ok {
		return utils.NotFoundError("notification")
	}
	now := time.Now()
	notification.Read = true
	notification.ReadAt = &now
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	for _, notification := range f.notifications {
		if notification.UserID == userID && !notification.Read {
			notification.Read = true
			notification.ReadAt = &now
		}
	}
	return nil
}
