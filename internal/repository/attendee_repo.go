package repository

import (
	"context"

	"github.com/AlpeshT/event-booking-backend/internal/interval"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"gorm.io/gorm"
)

type AttendeeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error
	FindByID(ctx context.Context, id string) (*models.Attendee, error)
	FindByEventAndUser(ctx context.Context, tx *gorm.DB, eventID, userID string) (*models.Attendee, error)
	CountByEvent(ctx context.Context, tx *gorm.DB, eventID string) (int64, error)
	FindByEventID(ctx context.Context, eventID string) ([]models.Attendee, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Attendee, error)
	// FindOverlappingUserEvents returns the other events the user is already
	// registered for whose interval overlaps the given window.
	FindOverlappingUserEvents(ctx context.Context, tx *gorm.DB, userID, excludeEventID string, window interval.Interval) ([]models.Event, error)
}

type attendeeRepository struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) AttendeeRepository {
	return &attendeeRepository{db: db}
}

func (r *attendeeRepository) Create(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error {
	return tx.WithContext(ctx).Create(attendee).Error
}

func (r *attendeeRepository) FindByID(ctx context.Context, id string) (*models.Attendee, error) {
	var attendee models.Attendee
	if err := r.db.WithContext(ctx).First(&attendee, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (r *attendeeRepository) FindByEventAndUser(ctx context.Context, tx *gorm.DB, eventID, userID string) (*models.Attendee, error) {
	var attendee models.Attendee
	err := tx.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&attendee).Error
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

func (r *attendeeRepository) CountByEvent(ctx context.Context, tx *gorm.DB, eventID string) (int64, error) {
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Attendee{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

func (r *attendeeRepository) FindByEventID(ctx context.Context, eventID string) ([]models.Attendee, error) {
	var attendees []models.Attendee
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Attendances").
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&attendees).Error
	if err != nil {
		return nil, err
	}
	return attendees, nil
}

func (r *attendeeRepository) FindByUserID(ctx context.Context, userID string) ([]models.Attendee, error) {
	var attendees []models.Attendee
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Attendances").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&attendees).Error
	if err != nil {
		return nil, err
	}
	return attendees, nil
}

func (r *attendeeRepository) FindOverlappingUserEvents(ctx context.Context, tx *gorm.DB, userID, excludeEventID string, window interval.Interval) ([]models.Event, error) {
	var events []models.Event
	err := tx.WithContext(ctx).
		Model(&models.Event{}).
		Joins("INNER JOIN attendees ON attendees.event_id = events.id").
		Where("attendees.user_id = ?", userID).
		Where("events.id <> ?", excludeEventID).
		Where("events.end_time > ? AND events.start_time < ?", window.Start, window.End).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
