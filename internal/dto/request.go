package dto

import "time"

type CreateEventRequest struct {
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required,gtfield=StartTime"`
	Capacity       int       `json:"capacity" validate:"required,gt=0"`
	OrganizationID string    `json:"organization_id" validate:"required"`
	ParentEventID  *string   `json:"parent_event_id,omitempty"`
}

type UpdateEventRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Capacity      *int       `json:"capacity,omitempty"`
	ParentEventID *string    `json:"parent_event_id,omitempty"`
}

type RegisterAttendeeRequest struct {
	EventID string `json:"event_id" validate:"required"`
	UserID  string `json:"user_id,omitempty"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
}

type AllocateResourceRequest struct {
	Quantity int `json:"quantity"`
}

type CreateResourceRequest struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Type           string  `json:"type" validate:"required,oneof=exclusive shareable consumable"`
	OrganizationID *string `json:"organization_id,omitempty"`
	MaxConcurrent  *int    `json:"max_concurrent,omitempty"`
	TotalQuantity  *int    `json:"total_quantity,omitempty"`
}

type UpdateResourceRequest struct {
	Name          *string `json:"name,omitempty"`
	Description   *string `json:"description,omitempty"`
	MaxConcurrent *int    `json:"max_concurrent,omitempty"`
	TotalQuantity *int    `json:"total_quantity,omitempty"`
}

type CreateOrganizationRequest struct {
	Name   string `json:"name" validate:"required"`
	Domain string `json:"domain"`
}

type UpdateOrganizationRequest struct {
	Name   *string `json:"name,omitempty"`
	Domain *string `json:"domain,omitempty"`
}

type CreateUserRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	OrganizationID string `json:"organization_id" validate:"required"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
