package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/observability"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
	"ridepool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateRideRequestInput carries everything a new request needs, including the
// requester contact snapshot that gets denormalized onto the document.
type CreateRideRequestInput struct {
	RideID          primitive.ObjectID
	RequesterID     primitive.ObjectID
	RequesterName   string
	RequesterPhone  string
	RequesterEmail  string
	DriverID        primitive.ObjectID
	SeatsRequested  int
	Message         string
	PickupLocation  string
	DropoffLocation string
}

type RideRequestService interface {
	CreateRideRequest(ctx context.Context, input *CreateRideRequestInput) (*models.RideRequest, error)
	RespondToRideRequest(ctx context.Context, requestID primitive.ObjectID, response models.RequestStatus, driverID primitive.ObjectID) (*models.RideRequest, error)
	CancelRideRequest(ctx context.Context, requestID, userID primitive.ObjectID) error

	GetRideRequests(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error)
	GetUserRideRequest(ctx context.Context, rideID, userID primitive.ObjectID) (*models.RideRequest, error)
	GetUserRideRequests(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error)
	GetDriverRideRequests(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error)
}

type rideRequestService struct {
	requestRepo interfaces.RideRequestRepository
	seatLedger  SeatLedger
	notifier    NotificationService
	logger      *logger.Logger
}

func NewRideRequestService(
	requestRepo interfaces.RideRequestRepository,
	seatLedger SeatLedger,
	notifier NotificationService,
	log *logger.Logger,
) RideRequestService {
	return &rideRequestService{
		requestRepo: requestRepo,
		seatLedger:  seatLedger,
		notifier:    notifier,
		logger:      log,
	}
}

func (s *rideRequestService) CreateRideRequest(ctx context.Context, input *CreateRideRequestInput) (*models.RideRequest, error) {
	if input.SeatsRequested == 0 {
		input.SeatsRequested = 1
	}

	if err := s.validateCreateInput(input); err != nil {
		return nil, err
	}

	// A rider holds at most one active request per ride. A rejected request
	// does not block re-requesting; an accepted one does, the rider already
	// has their seats.
	existing, err := s.requestRepo.GetActiveByRideAndRequester(ctx, input.RideID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status.IsActive() {
		return nil, fmt.Errorf("%w: ride %s", utils.ErrDuplicateRequest, input.RideID.Hex())
	}

	request := &models.RideRequest{
		RideID:          input.RideID,
		RequesterID:     input.RequesterID,
		RequesterName:   input.RequesterName,
		RequesterPhone:  input.RequesterPhone,
		RequesterEmail:  input.RequesterEmail,
		DriverID:        input.DriverID,
		Status:          models.RequestStatusPending,
		SeatsRequested:  input.SeatsRequested,
		Message:         input.Message,
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		RequestedAt:     time.Now(),
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	observability.RideRequestsCreated.Inc()
	s.logger.LogRequestEvent(request.ID, utils.EventRequestCreated, map[string]interface{}{
		"ride_id":         request.RideID.Hex(),
		"requester_id":    request.RequesterID.Hex(),
		"seats_requested": request.SeatsRequested,
	})

	s.notifier.Notify(ctx, input.DriverID, models.NotificationTypeRideRequest,
		"New Ride Request",
		fmt.Sprintf("%s has requested to join your ride", input.RequesterName),
		map[string]interface{}{
			"ride_id":         input.RideID.Hex(),
			"request_id":      request.ID.Hex(),
			"requester_name":  input.RequesterName,
			"seats_requested": input.SeatsRequested,
		})

	return request, nil
}

func (s *rideRequestService) RespondToRideRequest(ctx context.Context, requestID primitive.ObjectID, response models.RequestStatus, driverID primitive.ObjectID) (*models.RideRequest, error) {
	if response != models.RequestStatusAccepted && response != models.RequestStatusRejected {
		return nil, utils.ValidationError("response must be accepted or rejected, got %q", response)
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.DriverID != driverID {
		return nil, utils.UnauthorizedError(utils.ErrMsgNotRideOwner)
	}

	if request.Status != models.RequestStatusPending {
		return nil, fmt.Errorf("%w: status is %s", utils.ErrAlreadyResponded, request.Status)
	}

	now := time.Now()
	err = s.requestRepo.Update(ctx, requestID, map[string]interface{}{
		"status":       response,
		"responded_at": now,
	})
	if err != nil {
		return nil, err
	}

	request.Status = response
	request.RespondedAt = &now

	observability.RideRequestsResponded.WithLabelValues(string(response)).Inc()
	s.logger.LogRequestEvent(requestID, string(response), map[string]interface{}{
		"ride_id":   request.RideID.Hex(),
		"driver_id": driverID.Hex(),
	})

	// From here on the response itself is committed. Seat accounting errors
	// still surface to the caller, but they no longer undo the response.
	if response == models.RequestStatusAccepted {
		if err := s.seatLedger.AdjustAvailableSeats(ctx, request.RideID, -request.SeatsRequested); err != nil {
			s.logger.WithError(err).WithRideID(request.RideID).Error("Failed to adjust seats after accept")
			return request, err
		}
	}

	s.notifyResponse(ctx, request, response)

	if response == models.RequestStatusAccepted {
		s.rejectOtherPending(ctx, request.RideID, requestID)
	}

	return request, nil
}

func (s *rideRequestService) CancelRideRequest(ctx context.Context, requestID, userID primitive.ObjectID) error {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if request.RequesterID != userID {
		return utils.UnauthorizedError(utils.ErrMsgNotRequestOwner)
	}

	if request.Status == models.RequestStatusCancelled {
		return utils.ErrAlreadyCancelled
	}

	err = s.requestRepo.Update(ctx, requestID, map[string]interface{}{
		"status": models.RequestStatusCancelled,
	})
	if err != nil {
		return err
	}

	observability.RideRequestsCancelled.Inc()
	s.logger.LogRequestEvent(requestID, utils.EventRequestCancelled, map[string]interface{}{
		"ride_id":       request.RideID.Hex(),
		"prior_status":  string(request.Status),
		"requester_id":  userID.Hex(),
	})

	// Seats were only taken when the request was accepted; cancelling a
	// pending request has nothing to give back.
	if request.Status == models.RequestStatusAccepted {
		if err := s.seatLedger.AdjustAvailableSeats(ctx, request.RideID, request.SeatsRequested); err != nil {
			s.logger.WithError(err).WithRideID(request.RideID).Error("Failed to restore seats after cancel")
			return err
		}
	}

	return nil
}

func (s *rideRequestService) GetRideRequests(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error) {
	return s.requestRepo.GetByRide(ctx, rideID)
}

func (s *rideRequestService) GetUserRideRequest(ctx context.Context, rideID, userID primitive.ObjectID) (*models.RideRequest, error) {
	return s.requestRepo.GetActiveByRideAndRequester(ctx, rideID, userID)
}

func (s *rideRequestService) GetUserRideRequests(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	return s.requestRepo.GetByRequester(ctx, userID, params)
}

func (s *rideRequestService) GetDriverRideRequests(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	return s.requestRepo.GetByDriver(ctx, driverID, params)
}

func (s *rideRequestService) validateCreateInput(input *CreateRideRequestInput) error {
	switch {
	case input.RideID.IsZero():
		return utils.ValidationError("ride id is required")
	case input.RequesterID.IsZero():
		return utils.ValidationError("requester id is required")
	case input.DriverID.IsZero():
		return utils.ValidationError("driver id is required")
	case input.RequesterName == "":
		return utils.ValidationError("requester name is required")
	case input.RequesterPhone == "":
		return utils.ValidationError("requester phone is required")
	case input.RequesterEmail == "":
		return utils.ValidationError("requester email is required")
	case input.SeatsRequested < 1:
		return utils.ValidationError("seats requested must be at least 1")
	case input.RequesterID == input.DriverID:
		return utils.ValidationError(utils.ErrMsgOwnRide)
	}
	return nil
}

func (s *rideRequestService) notifyResponse(ctx context.Context, request *models.RideRequest, response models.RequestStatus) {
	notificationType := models.NotificationTypeRequestRejected
	title := "Ride Request Rejected"
	if response == models.RequestStatusAccepted {
		notificationType = models.NotificationTypeRequestAccepted
		title = "Ride Request Accepted"
	}

	s.notifier.Notify(ctx, request.RequesterID, notificationType,
		title,
		fmt.Sprintf("Your ride request has been %s", response),
		map[string]interface{}{
			"ride_id":    request.RideID.Hex(),
			"request_id": request.ID.Hex(),
			"response":   string(response),
		})
}

// rejectOtherPending rejects every still-pending request for the ride other
// than the one just accepted. Requests are independent, so the updates run
// concurrently and one failure never blocks the rest. The accept path invokes
// this fire-and-forget; nothing here surfaces back to the driver.
func (s *rideRequestService) rejectOtherPending(ctx context.Context, rideID, acceptedRequestID primitive.ObjectID) {
	pending, err := s.requestRepo.GetPendingByRideExcluding(ctx, rideID, acceptedRequestID)
	if err != nil {
		s.logger.WithError(err).WithRideID(rideID).Error("Failed to list pending requests for cascade rejection")
		return
	}

	if len(pending) == 0 {
		return
	}

	var wg sync.WaitGroup
	for _, request := range pending {
		wg.Add(1)
		go func(request *models.RideRequest) {
			defer wg.Done()

			err := s.requestRepo.Update(ctx, request.ID, map[string]interface{}{
				"status":       models.RequestStatusRejected,
				"responded_at": time.Now(),
			})
			if err != nil {
				s.logger.WithError(err).LogRequestEvent(request.ID, "cascade_reject_failed", nil)
				return
			}

			observability.CascadeRejections.Inc()

			s.notifier.Notify(ctx, request.RequesterID, models.NotificationTypeRequestRejected,
				"Ride Request Rejected",
				"Your ride request has been rejected as the ride is now full",
				map[string]interface{}{
					"ride_id":    request.RideID.Hex(),
					"request_id": request.ID.Hex(),
					"reason":     "ride_full",
				})
		}(request)
	}
	wg.Wait()

	s.logger.WithRideID(rideID).Infof("Rejected %d competing pending requests", len(pending))
}
