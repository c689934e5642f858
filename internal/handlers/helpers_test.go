package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"ridepool/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(err error) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	respondServiceError(c, err)
	return recorder
}

func TestRespondServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", utils.ValidationError("seats must be at least 1"), http.StatusBadRequest},
		{"not found", utils.NotFoundError("ride"), http.StatusNotFound},
		{"unauthorized", utils.UnauthorizedError(utils.ErrMsgNotRideOwner), http.StatusForbidden},
		{"duplicate", utils.ErrDuplicateRequest, http.StatusConflict},
		{"already responded", utils.ErrAlreadyResponded, http.StatusConflict},
		{"already cancelled", utils.ErrAlreadyCancelled, http.StatusConflict},
		{"persistence", utils.PersistenceError("update ride", errors.New("timeout")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := respondWith(tc.err)
			assert.Equal(t, tc.code, recorder.Code)
		})
	}
}
