package models

import (
	"time"

	"github.com/AlpeshT/event-booking-backend/internal/interval"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description,omitempty"`
	StartTime      time.Time `gorm:"not null" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	Capacity       int       `gorm:"not null" json:"capacity"`
	OrganizationID string    `gorm:"type:uuid;not null;index" json:"organization_id"`
	ParentEventID  *string   `gorm:"type:uuid;index" json:"parent_event_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	ParentEvent  *Event        `gorm:"foreignKey:ParentEventID" json:"parent_event,omitempty"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Interval returns the event's half-open time window.
func (e *Event) Interval() interval.Interval {
	return interval.New(e.StartTime, e.EndTime)
}
