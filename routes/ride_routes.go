package routes

import (
	"github.com/gin-gonic/gin"

	"ridepool/internal/handlers"
	"ridepool/internal/middleware"
)

// SetupRideRoutes sets up routes for offering and browsing rides
func SetupRideRoutes(r *gin.RouterGroup, jwtSecret string, rideHandler *handlers.RideHandler, requestHandler *handlers.RideRequestHandler) {
	rides := r.Group("/rides")
	rides.Use(middleware.AuthRequired(jwtSecret))
	{
		rides.POST("", rideHandler.CreateRide)
		rides.GET("/available", rideHandler.GetAvailableRides)
		rides.GET("/mine", rideHandler.GetMyRides)
		rides.GET("/:id", rideHandler.GetRide)
		rides.DELETE("/:id", rideHandler.CancelRide)

		// Ride-scoped request views
		rides.GET("/:id/requests", requestHandler.GetRideRequests)
		rides.GET("/:id/request", requestHandler.GetUserRideRequest)
	}
}
