package routes

import (
	"github.com/gin-gonic/gin"

	"ridepool/internal/handlers"
	"ridepool/internal/middleware"
)

// SetupNotificationRoutes sets up routes for the notification inbox
func SetupNotificationRoutes(r *gin.RouterGroup, jwtSecret string, notificationHandler *handlers.NotificationHandler) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthRequired(jwtSecret))
	{
		notifications.GET("", notificationHandler.GetNotifications)
		notifications.GET("/unread-count", notificationHandler.GetUnreadCount)
		notifications.PUT("/:id/read", notificationHandler.MarkAsRead)
		notifications.PUT("/read-all", notificationHandler.MarkAllAsRead)
	}
}
