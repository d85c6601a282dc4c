package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "foodbridge/internal/adapters/in/http"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *echo.Echo {
	e := echo.New()
	e.Validator = httpadapter.NewCustomValidator()
	httpadapter.NewServer(httpadapter.Handlers{}).RegisterRoutes(e)
	return e
}

func postJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestValidationFailure_ReturnsErrorResponseBody(t *testing.T) {
	e := newTestRouter()

	rec := postJSON(e, http.MethodPost, "/api/v1/donations", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
	assert.NotEmpty(t, body.Message)
}

func TestUpdateVolunteer_RejectsUnknownStatus(t *testing.T) {
	e := newTestRouter()

	rec := postJSON(e, http.MethodPut, "/api/v1/volunteers/"+kernel.NewUUID().String(),
		`{"vehicleType":"Car","licensePlate":"5PLT902","availability":"Weekends","isAvailable":true,"status":"Dormant"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
	assert.Contains(t, body.Message, "Status")
}

func TestRequestPickup_RejectsNegativeEstimate(t *testing.T) {
	e := newTestRouter()

	payload := `{"donationId":"` + kernel.NewUUID().String() +
		`","volunteerId":"` + kernel.NewUUID().String() +
		`","distance":-3.2,"estimatedDuration":10}`
	rec := postJSON(e, http.MethodPost, "/api/v1/pickup-requests", payload)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body httpadapter.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Code)
}
