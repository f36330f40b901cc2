package dto

import (
	"time"

	"github.com/AlpeshT/event-booking-backend/internal/models"
)

type EventResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Capacity       int       `json:"capacity"`
	OrganizationID string    `json:"organization_id"`
	ParentEventID  *string   `json:"parent_event_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type AttendeeResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    *string   `json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AttendanceResponse struct {
	ID          string    `json:"id"`
	AttendeeID  string    `json:"attendee_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

type AllocationResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	ResourceID string    `json:"resource_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

type ResourceResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	Type           string  `json:"type"`
	OrganizationID *string `json:"organization_id,omitempty"`
	MaxConcurrent  *int    `json:"max_concurrent,omitempty"`
	TotalQuantity  *int    `json:"total_quantity,omitempty"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Capacity:       e.Capacity,
		OrganizationID: e.OrganizationID,
		ParentEventID:  e.ParentEventID,
		CreatedAt:      e.CreatedAt,
	}
}

func ToAttendeeResponse(a *models.Attendee) AttendeeResponse {
	return AttendeeResponse{
		ID:        a.ID,
		EventID:   a.EventID,
		UserID:    a.UserID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}

func ToAttendanceResponse(a *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID,
		AttendeeID:  a.AttendeeID,
		CheckedInAt: a.CheckedInAt,
	}
}

func ToAllocationResponse(a *models.Allocation) AllocationResponse {
	return AllocationResponse{
		ID:         a.ID,
		EventID:    a.EventID,
		ResourceID: a.ResourceID,
		Quantity:   a.Quantity,
		CreatedAt:  a.CreatedAt,
	}
}

func ToResourceResponse(r *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:             r.ID,
		Name:           r.Name,
		Description:    r.Description,
		Type:           string(r.Type),
		OrganizationID: r.OrganizationID,
		MaxConcurrent:  r.MaxConcurrent,
		TotalQuantity:  r.TotalQuantity,
	}
}
