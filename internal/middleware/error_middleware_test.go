package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/deniz/classbooker/internal/pkg/apperrors"
)

func handleError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)
	return rec
}

func TestHandleAPIError_CustomErrorKeepsSentinelStatus(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrNotClassOwner,
		"Only the owning instructor may update this class")

	rec := handleError(err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only the owning instructor may update this class")
}

func TestHandleAPIError_ForbiddenErrorCarriesMessage(t *testing.T) {
	rec := handleError(apperrors.NewForbiddenError("You may only access your own records"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "You may only access your own records")
}

func TestHandleAPIError_BadRequestErrorCarriesMessage(t *testing.T) {
	rec := handleError(apperrors.NewBadRequestError("Invalid class ID"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid class ID")
}

func TestHandleAPIError_WrappedSentinelStillClassifies(t *testing.T) {
	rec := handleError(apperrors.NewCustomError(apperrors.ErrClassNotFound, ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "class not found")
}

func TestHandleAPIError_UpstreamFailure(t *testing.T) {
	rec := handleError(apperrors.ErrUpstreamFailure)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleAPIError_UnknownErrorIsInternal(t *testing.T) {
	rec := handleError(errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestHandleAPIError_NilErrorWritesNothing(t *testing.T) {
	rec := handleError(nil)

	assert.Empty(t, rec.Body.String())
}
