package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendee struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	EventID string `gorm:"type:uuid;not null;index" json:"event_id"`
	// UserID is nil for external attendees; Email/Name describe them instead.
	UserID    *string   `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Event       *Event       `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
	User        *User        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Attendances []Attendance `gorm:"foreignKey:AttendeeID" json:"attendances,omitempty"`
}

func (a *Attendee) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Attendance is an append-only check-in record. Repeated check-ins for the
// same attendee are permitted.
type Attendance struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	AttendeeID  string    `gorm:"type:uuid;not null;index" json:"attendee_id"`
	CheckedInAt time.Time `gorm:"not null" json:"checked_in_at"`

	Attendee *Attendee `gorm:"foreignKey:AttendeeID;constraint:OnDelete:CASCADE" json:"attendee,omitempty"`
}

func (a *Attendance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
