package repository

import (
	"context"

	"github.com/AlpeshT/event-booking-backend/internal/interval"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"gorm.io/gorm"
)

type AllocationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, allocation *models.Allocation) error
	FindByEventAndResource(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (*models.Allocation, error)
	FindByEventID(ctx context.Context, eventID string) ([]models.Allocation, error)
	// FindOverlappingHolders returns the events currently holding the
	// resource whose interval overlaps the given window, excluding one event.
	FindOverlappingHolders(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) ([]models.Event, error)
	CountOverlappingHolders(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) (int64, error)
	// SumQuantity totals quantity across all allocations of the resource,
	// regardless of time. Consumables deplete, they do not free up.
	SumQuantity(ctx context.Context, tx *gorm.DB, resourceID string) (int64, error)
	DeleteByEventAndResource(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (int64, error)
}

type allocationRepository struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) AllocationRepository {
	return &allocationRepository{db: db}
}

func (r *allocationRepository) Create(ctx context.Context, tx *gorm.DB, allocation *models.Allocation) error {
	return tx.WithContext(ctx).Create(allocation).Error
}

func (r *allocationRepository) FindByEventAndResource(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (*models.Allocation, error) {
	var allocation models.Allocation
	err := tx.WithContext(ctx).
		Where("event_id = ? AND resource_id = ?", eventID, resourceID).
		First(&allocation).Error
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}

func (r *allocationRepository) FindByEventID(ctx context.Context, eventID string) ([]models.Allocation, error) {
	var allocations []models.Allocation
	err := r.db.WithContext(ctx).
		Preload("Resource").
		Where("event_id = ?", eventID).
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}
	return allocations, nil
}

func (r *allocationRepository) FindOverlappingHolders(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) ([]models.Event, error) {
	var events []models.Event
	err := r.overlappingHolders(ctx, tx, resourceID, excludeEventID, window).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *allocationRepository) CountOverlappingHolders(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) (int64, error) {
	var count int64
	err := r.overlappingHolders(ctx, tx, resourceID, excludeEventID, window).
		Count(&count).Error
	return count, err
}

func (r *allocationRepository) overlappingHolders(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) *gorm.DB {
	return tx.WithContext(ctx).
		Model(&models.Event{}).
		Joins("INNER JOIN allocations ON allocations.event_id = events.id").
		Where("allocations.resource_id = ?", resourceID).
		Where("events.id <> ?", excludeEventID).
		Where("events.end_time > ? AND events.start_time < ?", window.Start, window.End)
}

func (r *allocationRepository) SumQuantity(ctx context.Context, tx *gorm.DB, resourceID string) (int64, error) {
	var total int64
	err := tx.WithContext(ctx).
		Model(&models.Allocation{}).
		Where("resource_id = ?", resourceID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *allocationRepository) DeleteByEventAndResource(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (int64, error) {
	result := tx.WithContext(ctx).
		Where("event_id = ? AND resource_id = ?", eventID, resourceID).
		Delete(&models.Allocation{})
	return result.RowsAffected, result.Error
}
