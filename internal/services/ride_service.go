package services

import (
	"context"
	"fmt"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
	"ridepool/pkg/logger"
	"ridepool/pkg/maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateRideInput struct {
	DriverID    primitive.ObjectID
	DriverName  string
	From        string
	To          string
	Date        string
	Time        string
	NoOfSeats   int
	Price       float64
	Description string
	CarModel    string
	CommunityID *primitive.ObjectID
}

// AvailableRidesQuery narrows the browse listing. DateFilter is one of
// "all", "today", "tomorrow"; Near with RadiusKM keeps only rides departing
// within that distance when the ride has coordinates.
type AvailableRidesQuery struct {
	DateFilter string
	Near       *models.GeoPoint
	RadiusKM   float64
}

type RideService interface {
	CreateRide(ctx context.Context, input *CreateRideInput) (*models.Ride, error)
	GetRide(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	GetAvailableRides(ctx context.Context, userID primitive.ObjectID, query *AvailableRidesQuery) ([]*models.Ride, error)
	GetDriverRides(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	CancelRide(ctx context.Context, rideID, driverID primitive.ObjectID) error
}

type rideService struct {
	rideRepo    interfaces.RideRepository
	requestRepo interfaces.RideRequestRepository
	notifier    NotificationService
	geocoder    maps.GeocodingProvider
	logger      *logger.Logger
}

func NewRideService(
	rideRepo interfaces.RideRepository,
	requestRepo interfaces.RideRequestRepository,
	notifier NotificationService,
	geocoder maps.GeocodingProvider,
	log *logger.Logger,
) RideService {
	return &rideService{
		rideRepo:    rideRepo,
		requestRepo: requestRepo,
		notifier:    notifier,
		geocoder:    geocoder,
		logger:      log,
	}
}

func (s *rideService) CreateRide(ctx context.Context, input *CreateRideInput) (*models.Ride, error) {
	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	ride := &models.Ride{
		DriverID:       input.DriverID,
		DriverName:     input.DriverName,
		From:           input.From,
		To:             input.To,
		Date:           input.Date,
		Time:           input.Time,
		NoOfSeats:      input.NoOfSeats,
		AvailableSeats: input.NoOfSeats,
		Price:          input.Price,
		Description:    input.Description,
		CarModel:       input.CarModel,
		CommunityID:    input.CommunityID,
		Status:         models.RideStatusActive,
	}

	// Geocoding is an enrichment: a ride without coordinates just skips the
	// proximity filter on the browse screen.
	ride.FromCoords = s.geocodeAddress(ctx, input.From)
	ride.ToCoords = s.geocodeAddress(ctx, input.To)

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.logger.LogRideEvent(ride.ID, utils.EventRideCreated, map[string]interface{}{
		"driver_id":   ride.DriverID.Hex(),
		"date":        ride.Date,
		"no_of_seats": ride.NoOfSeats,
	})

	return ride, nil
}

func (s *rideService) GetRide(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	return s.rideRepo.GetByID(ctx, id)
}

func (s *rideService) GetAvailableRides(ctx context.Context, userID primitive.ObjectID, query *AvailableRidesQuery) ([]*models.Ride, error) {
	if query == nil {
		query = &AvailableRidesQuery{DateFilter: "all"}
	}

	today := time.Now().Format("2006-01-02")
	filter := &interfaces.AvailableRidesFilter{
		ExcludeDriverID: userID,
	}

	switch query.DateFilter {
	case "today":
		filter.Date = today
	case "tomorrow":
		filter.Date = time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	default:
		filter.DateFrom = today
	}

	rides, err := s.rideRepo.GetAvailableRides(ctx, filter)
	if err != nil {
		return nil, err
	}

	if query.Near == nil {
		return rides, nil
	}

	radius := query.RadiusKM
	if radius <= 0 || radius > utils.MaxSearchRadius {
		radius = utils.DefaultSearchRadius
	}

	var nearby []*models.Ride
	for _, ride := range rides {
		if ride.FromCoords == nil {
			continue
		}
		if utils.IsWithinRadius(query.Near.Latitude, query.Near.Longitude, ride.FromCoords.Latitude, ride.FromCoords.Longitude, radius) {
			nearby = append(nearby, ride)
		}
	}

	return nearby, nil
}

func (s *rideService) GetDriverRides(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return s.rideRepo.GetByDriver(ctx, driverID, params)
}

func (s *rideService) CancelRide(ctx context.Context, rideID, driverID primitive.ObjectID) error {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return err
	}

	if ride.DriverID != driverID {
		return utils.UnauthorizedError("you can only cancel your own rides")
	}

	if ride.Status == models.RideStatusCancelled {
		return utils.ValidationError("ride is already cancelled")
	}

	err = s.rideRepo.Update(ctx, rideID, map[string]interface{}{
		"status": models.RideStatusCancelled,
	})
	if err != nil {
		return err
	}

	s.logger.LogRideEvent(rideID, utils.EventRideCancelled, map[string]interface{}{
		"driver_id": driverID.Hex(),
	})

	// Everyone holding a live request hears about the cancellation. Purely
	// best-effort, same as the rest of the notification fan-out.
	requests, err := s.requestRepo.GetByRide(ctx, rideID)
	if err != nil {
		s.logger.WithError(err).WithRideID(rideID).Error("Failed to list requests for ride cancellation fan-out")
		return nil
	}

	for _, request := range requests {
		s.notifier.Notify(ctx, request.RequesterID, models.NotificationTypeRideCancelled,
			"Ride Cancelled",
			fmt.Sprintf("The ride from %s to %s on %s has been cancelled by the driver", ride.From, ride.To, ride.Date),
			map[string]interface{}{
				"ride_id":    rideID.Hex(),
				"request_id": request.ID.Hex(),
			})
	}

	return nil
}

func (s *rideService) validateCreateInput(input *CreateRideInput) error {
	switch {
	case input.DriverID.IsZero():
		return utils.ValidationError("driver id is required")
	case input.From == "":
		return utils.ValidationError("origin is required")
	case input.To == "":
		return utils.ValidationError("destination is required")
	case input.Date == "":
		return utils.ValidationError("date is required")
	case input.Time == "":
		return utils.ValidationError("time is required")
	case input.NoOfSeats < utils.MinSeatsPerRide || input.NoOfSeats > utils.MaxSeatsPerRide:
		return utils.ValidationError("seats must be between %d and %d", utils.MinSeatsPerRide, utils.MaxSeatsPerRide)
	}
	return nil
}

func (s *rideService) geocodeAddress(ctx context.Context, address string) *models.GeoPoint {
	if s.geocoder == nil {
		return nil
	}

	resp, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.logger.WithError(err).Warnf("Failed to geocode %q", address)
		return nil
	}
	if len(resp.Results) == 0 {
		return nil
	}

	return &models.GeoPoint{
		Latitude:  resp.Results[0].Coordinates.Latitude,
		Longitude: resp.Results[0].Coordinates.Longitude,
	}
}
