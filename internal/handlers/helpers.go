package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ridepool/internal/utils"
	"ridepool/internal/validators"
)

// currentUserID pulls the authenticated caller's ID out of the gin context.
// The auth middleware guarantees the value is present and typed on any
// protected route; the second return covers misconfigured route wiring.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}

	userID, ok := value.(primitive.ObjectID)
	if !ok {
		utils.BadRequestResponse(c, "Invalid user ID")
		return primitive.NilObjectID, false
	}

	return userID, true
}

func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondServiceError maps service-layer errors onto HTTP responses. Anything
// not covered by a known kind falls through to a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErrs validators.ValidationErrors
	if errors.As(err, &validationErrs) {
		utils.ValidationErrorResponse(c, validationErrs.Details())
		return
	}

	switch {
	case errors.Is(err, utils.ErrValidation):
		utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, utils.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, utils.ErrUnauthorized):
		utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, utils.ErrDuplicateRequest):
		utils.ConflictResponse(c, utils.ErrMsgDuplicateRequest)
	case errors.Is(err, utils.ErrAlreadyResponded):
		utils.ConflictResponse(c, utils.ErrMsgAlreadyResponded)
	case errors.Is(err, utils.ErrAlreadyCancelled):
		utils.ConflictResponse(c, utils.ErrMsgAlreadyCancelled)
	default:
		utils.InternalServerErrorResponse(c)
	}
}
