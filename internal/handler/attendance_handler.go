package handler

import (
	"net/http"

	"github.com/AlpeshT/event-booking-backend/internal/dto"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/service"
	"github.com/labstack/echo/v4"
)

type AttendanceHandler struct {
	svc service.AttendanceService
}

func NewAttendanceHandler(svc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{svc: svc}
}

func (h *AttendanceHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/:attendeeId/checkin", h.CheckIn)
	g.GET("/event/:eventId", h.GetEventAttendees)
	g.GET("/user/:userId", h.GetUserAttendances)
}

func (h *AttendanceHandler) Register(c echo.Context) error {
	var req dto.RegisterAttendeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event_id is required")
	}

	var identity models.Identity
	switch {
	case req.UserID != "":
		identity = models.InternalIdentity(req.UserID)
	case req.Email != "" || req.Name != "":
		identity = models.ExternalIdentity(req.Email, req.Name)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "either user_id or email/name is required")
	}

	attendee, err := h.svc.RegisterForEvent(c.Request().Context(), req.EventID, identity)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToAttendeeResponse(attendee))
}

func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	attendance, err := h.svc.CheckIn(c.Request().Context(), c.Param("attendeeId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToAttendanceResponse(attendance))
}

func (h *AttendanceHandler) GetEventAttendees(c echo.Context) error {
	attendees, err := h.svc.GetEventAttendees(c.Request().Context(), c.Param("eventId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.AttendeeResponse, len(attendees))
	for i, a := range attendees {
		resp[i] = dto.ToAttendeeResponse(&a)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AttendanceHandler) GetUserAttendances(c echo.Context) error {
	attendees, err := h.svc.GetUserAttendances(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.AttendeeResponse, len(attendees))
	for i, a := range attendees {
		resp[i] = dto.ToAttendeeResponse(&a)
	}

	return c.JSON(http.StatusOK, resp)
}
