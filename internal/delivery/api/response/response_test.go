package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "carhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestError_KeepsDetailsFor4xx(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Validation failed", "model is required"))

	body := decodeError(t, rec)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Equal(t, "model is required", body["details"])
}

func TestError_DropsDetails(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c, rec := newContext()
		require.NoError(t, Error(c, status, "X", "msg", "secret"))

		body := decodeError(t, rec)
		_, has := body["details"]
		assert.False(t, has, "status %d", status)
	}

	c, rec := newContext()
	require.NoError(t, Error(c, http.StatusBadRequest, "X", "msg", ""))
	_, has := decodeError(t, rec)["details"]
	assert.False(t, has)
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	err := errors.Wrap(domainerrors.ErrCarNotFound, "lookup")
	require.NoError(t, HandleAppError(c, err))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Car not found or you don't have permission to view it", decodeError(t, rec)["message"])
}

func TestHandleAppError_PassesThroughUnknown(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, rec.Body.Len())
}
