package services

import (
	"context"
	"time"

	"ridepool/internal/models"
	"ridepool/internal/observability"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
	"ridepool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationService persists notification records for users. Notify is
// deliberately best-effort: its signature carries no error because a failed
// notification must never abort the ride request flow it rides along with.
type NotificationService interface {
	Notify(ctx context.Context, userID primitive.ObjectID, notificationType models.NotificationType, title, message string, data map[string]interface{})

	GetUserNotifications(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error)
	GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error)
	MarkAsRead(ctx context.Context, notificationID, userID primitive.ObjectID) error
	MarkAllAsRead(ctx context.Context, userID primitive.ObjectID) error
}

type notificationService struct {
	notificationRepo interfaces.NotificationRepository
	logger           *logger.Logger
}

func NewNotificationService(notificationRepo interfaces.NotificationRepository, log *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           log,
	}
}

func (s *notificationService) Notify(ctx context.Context, userID primitive.ObjectID, notificationType models.NotificationType, title, message string, data map[string]interface{}) {
	if userID.IsZero() || notificationType == "" || title == "" || message == "" {
		s.logger.WithFields(map[string]interface{}{
			"user_id": userID.Hex(),
			"type":    notificationType,
		}).Error("Dropping notification with missing required fields")
		observability.NotificationFailures.Inc()
		return
	}

	if data == nil {
		data = map[string]interface{}{}
	}

	now := time.Now()
	notification := &models.Notification{
		UserID:    userID,
		Type:      notificationType,
		Title:     title,
		Message:   message,
		Data:      data,
		Read:      false,
		CreatedAt: now,
		ExpiresAt: now.Add(utils.NotificationTTL),
	}

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.WithError(err).WithUserID(userID).Error("Failed to create notification")
		observability.NotificationFailures.Inc()
		return
	}

	observability.NotificationsCreated.Inc()
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error) {
	return s.notificationRepo.GetByUserID(ctx, userID, params)
}

func (s *notificationService) GetUnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.notificationRepo.GetUnreadCount(ctx, userID)
}

func (s *notificationService) MarkAsRead(ctx context.Context, notificationID, userID primitive.ObjectID) error {
	notification, err := s.notificationRepo.GetByID(ctx, notificationID)
	if err != nil {
		return err
	}

	if notification.UserID != userID {
		return utils.UnauthorizedError("you can only read your own notifications")
	}

	return s.notificationRepo.MarkAsRead(ctx, notificationID)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userID primitive.ObjectID) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}
