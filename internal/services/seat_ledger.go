package services

import (
	"context"
	"sync"

	"ridepool/internal/models"
	"ridepool/internal/observability"
	"ridepool/internal/repositories/interfaces"
	"ridepool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeatLedger maintains the availableSeats/status pair on a ride. It is the
// only writer of those fields.
type SeatLedger interface {
	// AdjustAvailableSeats applies a signed delta to the ride's available
	// seats, clamped to [0, NoOfSeats], and rederives the active/full status.
	AdjustAvailableSeats(ctx context.Context, rideID primitive.ObjectID, delta int) error
}

type seatLedger struct {
	rideRepo interfaces.RideRepository
	logger   *logger.Logger

	// Seat mutations for a ride are serialized through a per-ride mutex so
	// two concurrent accepts cannot both read the same seat count before
	// either writes.
	mu        sync.Mutex
	rideLocks map[primitive.ObjectID]*sync.Mutex
}

func NewSeatLedger(rideRepo interfaces.RideRepository, log *logger.Logger) SeatLedger {
	return &seatLedger{
		rideRepo:  rideRepo,
		logger:    log,
		rideLocks: make(map[primitive.ObjectID]*sync.Mutex),
	}
}

func (s *seatLedger) AdjustAvailableSeats(ctx context.Context, rideID primitive.ObjectID, delta int) error {
	lock := s.lockFor(rideID)
	lock.Lock()
	defer lock.Unlock()

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return err
	}

	newAvailable := clampSeats(ride.AvailableSeats+delta, ride.NoOfSeats)
	status := models.DeriveSeatStatus(newAvailable)

	if err := s.rideRepo.UpdateSeatAvailability(ctx, rideID, newAvailable, status); err != nil {
		return err
	}

	direction := "restore"
	if delta < 0 {
		direction = "allocate"
	}
	observability.SeatAdjustments.WithLabelValues(direction).Inc()

	s.logger.WithRideID(rideID).WithFields(map[string]interface{}{
		"delta":           delta,
		"available_seats": newAvailable,
		"status":          status,
	}).Debug("Adjusted available seats")

	return nil
}

func (s *seatLedger) lockFor(rideID primitive.ObjectID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.rideLocks[rideID]
	if !ok {
		lock = &sync.Mutex{}
		s.rideLocks[rideID] = lock
	}
	return lock
}

func clampSeats(seats, capacity int) int {
	if seats < 0 {
		return 0
	}
	if seats > capacity {
		return capacity
	}
	return seats
}
