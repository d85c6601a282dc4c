package http

import (
	"errors"
	"net/http"

	"foodbridge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps a use case error onto the HTTP status contract:
// validation failures become 400, missing objects 404, business rule and
// concurrency conflicts 409, everything else 500.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		// Internal details stay out of the response body.
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, errs.ErrReferentialIntegrity):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondBadRequest reports a malformed or invalid request body.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
