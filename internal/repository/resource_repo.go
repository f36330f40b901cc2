package repository

import (
	"context"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	FindByID(ctx context.Context, id string) (*models.Resource, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Resource, error)
	FindAll(ctx context.Context, organizationID *string) ([]models.Resource, error)
	Update(ctx context.Context, resource *models.Resource) error
	Delete(ctx context.Context, id string) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.WithContext(ctx).First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindByIDForUpdate locks the resource row; every admission decision for a
// resource reasons over all of its current holders, so the whole sequence is
// linearized per resource.
func (r *resourceRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Resource, error) {
	var resource models.Resource
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&resource, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resource, nil
}

// FindAll lists resources. When filtering by organization, global resources
// (no organization) are included.
func (r *resourceRepository) FindAll(ctx context.Context, organizationID *string) ([]models.Resource, error) {
	var resources []models.Resource
	q := r.db.WithContext(ctx)
	if organizationID != nil {
		q = q.Where("organization_id = ? OR organization_id IS NULL", *organizationID)
	}
	if err := q.Order("name ASC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *resourceRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Resource{}, "id = ?", id).Error
}
