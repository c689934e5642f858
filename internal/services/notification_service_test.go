package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ridepool/internal/models"
	"ridepool/internal/utils"
	"ridepool/pkg/logger"
)

func TestNotifyPersistsNotification(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, logger.NewNopLogger())
	userID := primitive.NewObjectID()

	before := time.Now()
	service.Notify(context.Background(), userID, models.NotificationTypeRideRequest,
		"New Ride Request", "Alice has requested to join your ride",
		map[string]interface{}{"seats_requested": 2})

	inbox := repo.forUser(userID)
	require.Len(t, inbox, 1)

	notification := inbox[0]
	assert.Equal(t, models.NotificationTypeRideRequest, notification.Type)
	assert.False(t, notification.Read)
	assert.Equal(t, 2, notification.Data["seats_requested"])

	// Records expire a fixed window after creation.
	expectedExpiry := before.Add(utils.NotificationTTL)
	assert.WithinDuration(t, expectedExpiry, notification.ExpiresAt, time.Minute)
}

func TestNotifyDropsMissingRequiredFields(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, logger.NewNopLogger())
	userID := primitive.NewObjectID()

	service.Notify(context.Background(), primitive.NilObjectID, models.NotificationTypeRideRequest, "Title", "Message", nil)
	service.Notify(context.Background(), userID, "", "Title", "Message", nil)
	service.Notify(context.Background(), userID, models.NotificationTypeRideRequest, "", "Message", nil)
	service.Notify(context.Background(), userID, models.NotificationTypeRideRequest, "Title", "", nil)

	assert.Empty(t, repo.forUser(userID))
}

func TestNotifyNeverPanicsOnStoreFailure(t *testing.T) {
	repo := newFakeNotificationRepo()
	repo.failCreate = true
	service := NewNotificationService(repo, logger.NewNopLogger())

	assert.NotPanics(t, func() {
		service.Notify(context.Background(), primitive.NewObjectID(), models.NotificationTypeRideRequest,
			"New Ride Request", "Alice has requested to join your ride", nil)
	})
}

func TestGetUserNotificationsFiltersExpired(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, logger.NewNopLogger())
	userID := primitive.NewObjectID()

	fresh := &models.Notification{
		UserID:    userID,
		Type:      models.NotificationTypeRequestAccepted,
		Title:     "Ride Request Accepted",
		Message:   "Your ride request has been accepted",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(utils.NotificationTTL),
	}
	expired := &models.Notification{
		UserID:    userID,
		Type:      models.NotificationTypeRequestRejected,
		Title:     "Ride Request Rejected",
		Message:   "Your ride request has been rejected",
		CreatedAt: time.Now().Add(-31 * 24 * time.Hour),
		ExpiresAt: time.Now().Add(-24 * time.Hour),
	}
	require.NoError(t, repo.Create(context.Background(), fresh))
	require.NoError(t, repo.Create(context.Background(), expired))

	notifications, total, err := service.GetUserNotifications(context.Background(), userID, &utils.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, notifications, 1)
	assert.Equal(t, fresh.ID, notifications[0].ID)
}

func TestMarkAsReadRequiresOwnership(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, logger.NewNopLogger())
	userID := primitive.NewObjectID()

	notification := &models.Notification{
		UserID:    userID,
		Type:      models.NotificationTypeRideRequest,
		Title:     "New Ride Request",
		Message:   "Alice has requested to join your ride",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(utils.NotificationTTL),
	}
	require.NoError(t, repo.Create(context.Background(), notification))

	err := service.MarkAsRead(context.Background(), notification.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	require.NoError(t, service.MarkAsRead(context.Background(), notification.ID, userID))

	count, err := service.GetUnreadCount(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMarkAllAsRead(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, logger.NewNopLogger())
	userID := primitive.NewObjectID()

	for i := 0; i < 3; i++ {
		service.Notify(context.Background(), userID, models.NotificationTypeRideRequest,
			"New Ride Request", "Someone has requested to join your ride", nil)
	}

	count, err := service.GetUnreadCount(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)

	require.NoError(t, service.MarkAllAsRead(context.Background(), userID))

	count, err = service.GetUnreadCount(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
