package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ridepool/internal/models"
	"ridepool/internal/services"
	"ridepool/internal/utils"
	"ridepool/internal/validators"
)

type RideHandler struct {
	rideService services.RideService
}

func NewRideHandler(rideService services.RideService) *RideHandler {
	return &RideHandler{
		rideService: rideService,
	}
}

// CreateRide handles a driver offering a new ride
func (h *RideHandler) CreateRide(c *gin.Context) {
	var payload validators.CreateRidePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateCreateRide(&payload); err != nil {
		respondServiceError(c, err)
		return
	}

	driverID, ok := currentUserID(c)
	if !ok {
		return
	}

	input := &services.CreateRideInput{
		DriverID:    driverID,
		DriverName:  c.GetString("user_name"),
		From:        payload.From,
		To:          payload.To,
		Date:        payload.Date,
		Time:        payload.Time,
		NoOfSeats:   payload.NoOfSeats,
		Price:       payload.Price,
		Description: payload.Description,
		CarModel:    payload.CarModel,
	}

	if payload.CommunityID != "" {
		communityID, _ := primitive.ObjectIDFromHex(payload.CommunityID)
		input.CommunityID = &communityID
	}

	ride, err := h.rideService.CreateRide(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ride created successfully", ride)
}

// GetRide retrieves a single ride
func (h *RideHandler) GetRide(c *gin.Context) {
	rideID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	ride, err := h.rideService.GetRide(c.Request.Context(), rideID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride retrieved successfully", ride)
}

// GetAvailableRides lists rides open for requests, excluding the caller's own
func (h *RideHandler) GetAvailableRides(c *gin.Context) {
	var payload validators.AvailableRidesPayload
	if err := c.ShouldBindQuery(&payload); err != nil {
		utils.BadRequestResponse(c, "Invalid query: "+err.Error())
		return
	}

	if err := validators.ValidateAvailableRides(&payload); err != nil {
		respondServiceError(c, err)
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	query := &services.AvailableRidesQuery{
		DateFilter: payload.DateFilter,
		RadiusKM:   payload.RadiusKM,
	}
	if payload.Latitude != 0 || payload.Longitude != 0 {
		query.Near = &models.GeoPoint{
			Latitude:  payload.Latitude,
			Longitude: payload.Longitude,
		}
	}

	rides, err := h.rideService.GetAvailableRides(c.Request.Context(), userID, query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Available rides retrieved successfully", rides)
}

// GetMyRides lists rides the caller is driving
func (h *RideHandler) GetMyRides(c *gin.Context) {
	driverID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	rides, total, err := h.rideService.GetDriverRides(c.Request.Context(), driverID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Rides retrieved successfully", map[string]interface{}{
		"rides": rides,
	}, meta)
}

// CancelRide lets the driver cancel their own ride
func (h *RideHandler) CancelRide(c *gin.Context) {
	rideID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	driverID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.rideService.CancelRide(c.Request.Context(), rideID, driverID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride cancelled successfully", nil)
}
