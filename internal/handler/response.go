package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bhavesh/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Error  string               `json:"error"`
	Issues []service.FieldIssue `json:"issues"`
}

type throttledResponse struct {
	Error             string `json:"error"`
	RetryAfterSeconds int    `json:"retryAfterSeconds"`
}

// Error writes a plain JSON error body with the given status.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}

// writeServiceError maps service-layer errors onto HTTP responses.
// Typed errors carry extra payload (field issues, retry delay); the
// sentinel cases fall through to a fixed status and message.
func writeServiceError(c echo.Context, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, validationResponse{Error: "validation failed", Issues: verr.Issues})
	}

	var terr *service.ThrottledError
	if errors.As(err, &terr) {
		retryAfter := terr.RetryAfterSeconds()
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
		return c.JSON(http.StatusTooManyRequests, throttledResponse{Error: "too many requests", RetryAfterSeconds: retryAfter})
	}

	switch {
	case errors.Is(err, service.ErrUnsupportedFile):
		return Error(c, http.StatusUnsupportedMediaType, "unsupported file type")
	case errors.Is(err, service.ErrFileTooLarge):
		return Error(c, http.StatusRequestEntityTooLarge, "file too large")
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return Error(c, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrUnauthorized):
		return Error(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrForbidden):
		return Error(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrThrottled):
		return Error(c, http.StatusTooManyRequests, "too many requests")
	case errors.Is(err, service.ErrStorage):
		return Error(c, http.StatusBadGateway, "storage unavailable")
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
