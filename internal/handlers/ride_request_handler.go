package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ridepool/internal/models"
	"ridepool/internal/services"
	"ridepool/internal/utils"
	"ridepool/internal/validators"
)

type RideRequestHandler struct {
	requestService services.RideRequestService
}

func NewRideRequestHandler(requestService services.RideRequestService) *RideRequestHandler {
	return &RideRequestHandler{
		requestService: requestService,
	}
}

// CreateRideRequest handles a rider asking to join a ride
func (h *RideRequestHandler) CreateRideRequest(c *gin.Context) {
	var payload validators.CreateRideRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateCreateRideRequest(&payload); err != nil {
		respondServiceError(c, err)
		return
	}

	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}

	rideID, _ := primitive.ObjectIDFromHex(payload.RideID)
	driverID, _ := primitive.ObjectIDFromHex(payload.DriverID)

	input := &services.CreateRideRequestInput{
		RideID:          rideID,
		RequesterID:     requesterID,
		RequesterName:   payload.RequesterName,
		RequesterPhone:  payload.RequesterPhone,
		RequesterEmail:  payload.RequesterEmail,
		DriverID:        driverID,
		SeatsRequested:  payload.SeatsRequested,
		Message:         payload.Message,
		PickupLocation:  payload.PickupLocation,
		DropoffLocation: payload.DropoffLocation,
	}

	request, err := h.requestService.CreateRideRequest(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ride request created successfully", request)
}

// RespondToRideRequest lets the driver accept or reject a pending request
func (h *RideRequestHandler) RespondToRideRequest(c *gin.Context) {
	requestID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var payload validators.RespondToRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if err := validators.ValidateRespondToRequest(&payload); err != nil {
		respondServiceError(c, err)
		return
	}

	driverID, ok := currentUserID(c)
	if !ok {
		return
	}

	request, err := h.requestService.RespondToRideRequest(c.Request.Context(), requestID, models.RequestStatus(payload.Response), driverID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride request "+payload.Response, request)
}

// CancelRideRequest lets the requester withdraw their own request
func (h *RideRequestHandler) CancelRideRequest(c *gin.Context) {
	requestID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.requestService.CancelRideRequest(c.Request.Context(), requestID, userID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride request cancelled successfully", nil)
}

// GetRideRequests lists every request on a ride
func (h *RideRequestHandler) GetRideRequests(c *gin.Context) {
	rideID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	requests, err := h.requestService.GetRideRequests(c.Request.Context(), rideID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride requests retrieved successfully", requests)
}

// GetUserRideRequest returns the caller's live request on a ride, if any
func (h *RideRequestHandler) GetUserRideRequest(c *gin.Context) {
	rideID, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	request, err := h.requestService.GetUserRideRequest(c.Request.Context(), rideID, userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride request retrieved successfully", request)
}

// GetMyRideRequests lists the caller's own requests across rides
func (h *RideRequestHandler) GetMyRideRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	requests, total, err := h.requestService.GetUserRideRequests(c.Request.Context(), userID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Ride requests retrieved successfully", map[string]interface{}{
		"requests": requests,
	}, meta)
}

// GetIncomingRideRequests lists requests against the caller's rides
func (h *RideRequestHandler) GetIncomingRideRequests(c *gin.Context) {
	driverID, ok := currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	requests, total, err := h.requestService.GetDriverRideRequests(c.Request.Context(), driverID, params)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
	}

	utils.SuccessResponseWithMeta(c, "Incoming ride requests retrieved successfully", map[string]interface{}{
		"requests": requests,
	}, meta)
}
