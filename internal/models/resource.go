package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceType string

const (
	// ResourceExclusive may be held by at most one event during any
	// overlapping time window.
	ResourceExclusive ResourceType = "exclusive"
	// ResourceShareable may be held by up to MaxConcurrent events during
	// overlapping windows.
	ResourceShareable ResourceType = "shareable"
	// ResourceConsumable is a depleting quantity shared across all
	// allocations ever made, independent of time.
	ResourceConsumable ResourceType = "consumable"
)

func (t ResourceType) Valid() bool {
	switch t {
	case ResourceExclusive, ResourceShareable, ResourceConsumable:
		return true
	}
	return false
}

type Resource struct {
	ID          string       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `gorm:"type:text" json:"description,omitempty"`
	Type        ResourceType `gorm:"type:varchar(20);not null" json:"type"`
	// OrganizationID is nil for global resources visible to every organization.
	OrganizationID *string `gorm:"type:uuid;index" json:"organization_id,omitempty"`
	// MaxConcurrent applies to shareable resources; nil means unlimited.
	MaxConcurrent *int `json:"max_concurrent,omitempty"`
	// TotalQuantity applies to consumable resources; nil means unlimited.
	TotalQuantity *int      `json:"total_quantity,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"organization,omitempty"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
