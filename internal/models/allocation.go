package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Allocation links a resource to an event. At most one allocation exists per
// (event, resource) pair; Quantity expresses multiple units of a consumable.
type Allocation struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	EventID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_event_resource" json:"event_id"`
	ResourceID string    `gorm:"type:uuid;not null;uniqueIndex:idx_event_resource" json:"resource_id"`
	Quantity   int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`

	Event    *Event    `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event,omitempty"`
	Resource *Resource `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE" json:"resource,omitempty"`
}

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
