package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/repository"
	"github.com/AlpeshT/event-booking-backend/pkg/keylock"
	"github.com/AlpeshT/event-booking-backend/pkg/rabbitmq"
	"gorm.io/gorm"
)

// ResourceUpdate carries the fields of an update request; nil means unchanged.
type ResourceUpdate struct {
	Name          *string
	Description   *string
	MaxConcurrent *int
	TotalQuantity *int
}

type ResourceService interface {
	CreateResource(ctx context.Context, resource *models.Resource) error
	UpdateResource(ctx context.Context, id string, upd ResourceUpdate) (*models.Resource, error)
	DeleteResource(ctx context.Context, id string) error
	GetResource(ctx context.Context, id string) (*models.Resource, error)
	ListResources(ctx context.Context, organizationID *string) ([]models.Resource, error)

	AllocateResource(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error)
	RemoveResource(ctx context.Context, eventID, resourceID string) error
	GetEventAllocations(ctx context.Context, eventID string) ([]models.Allocation, error)
}

type resourceService struct {
	resourceRepo   repository.ResourceRepository
	allocationRepo repository.AllocationRepository
	eventRepo      repository.EventRepository
	tx             repository.TxManager
	gate           *keylock.KeyLock
	publisher      *rabbitmq.Publisher
}

func NewResourceService(
	resourceRepo repository.ResourceRepository,
	allocationRepo repository.AllocationRepository,
	eventRepo repository.EventRepository,
	tx repository.TxManager,
	gate *keylock.KeyLock,
	publisher *rabbitmq.Publisher,
) ResourceService {
	return &resourceService{
		resourceRepo:   resourceRepo,
		allocationRepo: allocationRepo,
		eventRepo:      eventRepo,
		tx:             tx,
		gate:           gate,
		publisher:      publisher,
	}
}

func (s *resourceService) CreateResource(ctx context.Context, resource *models.Resource) error {
	if !resource.Type.Valid() {
		return ErrInvalidResourceType
	}
	if err := s.resourceRepo.Create(ctx, resource); err != nil {
		return fmt.Errorf("create resource: %w", err)
	}
	return nil
}

func (s *resourceService) UpdateResource(ctx context.Context, id string, upd ResourceUpdate) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrResourceNotFound
	}

	if upd.Name != nil {
		resource.Name = *upd.Name
	}
	if upd.Description != nil {
		resource.Description = *upd.Description
	}
	if upd.MaxConcurrent != nil {
		resource.MaxConcurrent = upd.MaxConcurrent
	}
	if upd.TotalQuantity != nil {
		resource.TotalQuantity = upd.TotalQuantity
	}

	if err := s.resourceRepo.Update(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) DeleteResource(ctx context.Context, id string) error {
	if _, err := s.resourceRepo.FindByID(ctx, id); err != nil {
		return ErrResourceNotFound
	}
	return s.resourceRepo.Delete(ctx, id)
}

func (s *resourceService) GetResource(ctx context.Context, id string) (*models.Resource, error) {
	resource, err := s.resourceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrResourceNotFound
	}
	return resource, nil
}

func (s *resourceService) ListResources(ctx context.Context, organizationID *string) ([]models.Resource, error) {
	return s.resourceRepo.FindAll(ctx, organizationID)
}

func (s *resourceService) AllocateResource(ctx context.Context, eventID, resourceID string, quantity int) (*models.Allocation, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// Every check below reasons over all current holders of the resource, so
	// the whole read-decide-write sequence is linearized per resource.
	release := s.gate.Acquire("resource:" + resourceID)
	defer release()

	var allocation *models.Allocation

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		resource, err := s.resourceRepo.FindByIDForUpdate(ctx, tx, resourceID)
		if err != nil {
			return ErrResourceNotFound
		}
		event, err := s.eventRepo.FindByID(ctx, eventID)
		if err != nil {
			return ErrEventNotFound
		}

		if _, err := s.allocationRepo.FindByEventAndResource(ctx, tx, eventID, resourceID); err == nil {
			return ErrDuplicateAllocation
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		switch resource.Type {
		case models.ResourceExclusive:
			holders, err := s.allocationRepo.FindOverlappingHolders(ctx, tx, resourceID, eventID, event.Interval())
			if err != nil {
				return err
			}
			if len(holders) > 0 {
				h := holders[0]
				return &ResourceConflictError{
					EventID: h.ID,
					Title:   h.Title,
					Start:   h.StartTime,
					End:     h.EndTime,
				}
			}

		case models.ResourceShareable:
			if resource.MaxConcurrent != nil {
				concurrent, err := s.allocationRepo.CountOverlappingHolders(ctx, tx, resourceID, eventID, event.Interval())
				if err != nil {
					return err
				}
				if concurrent >= int64(*resource.MaxConcurrent) {
					return fmt.Errorf("%w: resource %q has reached maximum concurrent usage (%d)",
						ErrCapacityExceeded, resource.Name, *resource.MaxConcurrent)
				}
			}

		case models.ResourceConsumable:
			// Consumables deplete across all allocations ever made; the sum
			// is deliberately not time-scoped.
			if resource.TotalQuantity != nil {
				used, err := s.allocationRepo.SumQuantity(ctx, tx, resourceID)
				if err != nil {
					return err
				}
				if used+int64(quantity) > int64(*resource.TotalQuantity) {
					return fmt.Errorf("%w: insufficient consumable quantity for %q (%d used of %d)",
						ErrCapacityExceeded, resource.Name, used, *resource.TotalQuantity)
				}
			}
		}

		a := &models.Allocation{
			EventID:    eventID,
			ResourceID: resourceID,
			Quantity:   quantity,
		}
		if err := s.allocationRepo.Create(ctx, tx, a); err != nil {
			return err
		}
		allocation = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("resource.allocated", allocation)
	}
	return allocation, nil
}

// RemoveResource deletes the allocation if present; removing a missing
// allocation is a no-op.
func (s *resourceService) RemoveResource(ctx context.Context, eventID, resourceID string) error {
	release := s.gate.Acquire("resource:" + resourceID)
	defer release()

	var removed int64
	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		n, err := s.allocationRepo.DeleteByEventAndResource(ctx, tx, eventID, resourceID)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})
	if err != nil {
		return fmt.Errorf("remove resource: %w", err)
	}

	if removed > 0 && s.publisher != nil {
		_ = s.publisher.Publish("resource.released", map[string]string{
			"event_id":    eventID,
			"resource_id": resourceID,
		})
	}
	return nil
}

func (s *resourceService) GetEventAllocations(ctx context.Context, eventID string) ([]models.Allocation, error) {
	return s.allocationRepo.FindByEventID(ctx, eventID)
}
