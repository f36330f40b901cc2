package repository

import (
	"context"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, tx *gorm.DB, event *models.Event) error
	FindByID(ctx context.Context, id string) (*models.Event, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error)
	FindAll(ctx context.Context, organizationID *string) ([]models.Event, error)
	Update(ctx context.Context, tx *gorm.DB, event *models.Event) error
	Delete(ctx context.Context, id string) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return tx.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// FindByIDForUpdate acquires a row-level lock on the event within the given
// transaction.
func (r *eventRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, organizationID *string) ([]models.Event, error) {
	var events []models.Event
	q := r.db.WithContext(ctx)
	if organizationID != nil {
		q = q.Where("organization_id = ?", *organizationID)
	}
	if err := q.Order("start_time ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	return tx.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	// Attendees and allocations go with the event via FK cascade.
	return r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id).Error
}
