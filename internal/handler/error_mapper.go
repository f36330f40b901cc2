package handler

import (
	"errors"
	"net/http"

	"github.com/AlpeshT/event-booking-backend/internal/service"
	"github.com/labstack/echo/v4"
)

// toHTTPError maps service errors to HTTP status codes. Every admission
// failure carries enough context in its message to render to the caller.
func toHTTPError(err error) *echo.HTTPError {
	var scheduleConflict *service.ScheduleConflictError
	var resourceConflict *service.ResourceConflictError

	switch {
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrParentEventNotFound),
		errors.Is(err, service.ErrResourceNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrAttendeeNotFound),
		errors.Is(err, service.ErrOrganizationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrOrganizationRequired),
		errors.Is(err, service.ErrInvalidTimeRange),
		errors.Is(err, service.ErrInvalidContainment),
		errors.Is(err, service.ErrInvalidResourceType),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrCrossOrgViolation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrDuplicateRegistration),
		errors.Is(err, service.ErrDuplicateAllocation):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	case errors.As(err, &scheduleConflict),
		errors.As(err, &resourceConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
