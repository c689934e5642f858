package routes

import (
	"github.com/gin-gonic/gin"

	"ridepool/internal/handlers"
	"ridepool/internal/middleware"
)

// SetupRideRequestRoutes sets up routes for the request lifecycle
func SetupRideRequestRoutes(r *gin.RouterGroup, jwtSecret string, requestHandler *handlers.RideRequestHandler) {
	requests := r.Group("/ride-requests")
	requests.Use(middleware.AuthRequired(jwtSecret))
	{
		requests.POST("", requestHandler.CreateRideRequest)
		requests.GET("/mine", requestHandler.GetMyRideRequests)
		requests.GET("/incoming", requestHandler.GetIncomingRideRequests)
		requests.PUT("/:id/respond", requestHandler.RespondToRideRequest)
		requests.PUT("/:id/cancel", requestHandler.CancelRideRequest)
	}
}
