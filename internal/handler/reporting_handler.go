package handler

import (
	"net/http"
	"strconv"

	"github.com/AlpeshT/event-booking-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type ReportingHandler struct {
	svc service.ReportingService
}

func NewReportingHandler(svc service.ReportingService) *ReportingHandler {
	return &ReportingHandler{svc: svc}
}

func (h *ReportingHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/double-booked-users", h.DoubleBookedUsers)
	g.GET("/violating-events", h.ViolatingEvents)
	g.GET("/resource-utilization", h.ResourceUtilization)
	g.GET("/invalid-parent-events", h.InvalidParentEvents)
	g.GET("/external-attendees", h.ExternalAttendees)
	g.GET("/underutilized-resources", h.UnderutilizedResources)
}

func (h *ReportingHandler) DoubleBookedUsers(c echo.Context) error {
	rows, err := h.svc.FindDoubleBookedUsers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportingHandler) ViolatingEvents(c echo.Context) error {
	rows, err := h.svc.FindViolatingEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportingHandler) ResourceUtilization(c echo.Context) error {
	rows, err := h.svc.GetResourceUtilization(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportingHandler) InvalidParentEvents(c echo.Context) error {
	rows, err := h.svc.FindInvalidChildEvents(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportingHandler) ExternalAttendees(c echo.Context) error {
	threshold := 10
	if v := c.QueryParam("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid threshold")
		}
		threshold = n
	}

	rows, err := h.svc.FindEventsWithExternalAttendees(c.Request().Context(), threshold)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportingHandler) UnderutilizedResources(c echo.Context) error {
	minHours := 10.0
	if v := c.QueryParam("minUsageHours"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid minUsageHours")
		}
		minHours = f
	}

	rows, err := h.svc.FindUnderutilizedResources(c.Request().Context(), minHours)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rows)
}
