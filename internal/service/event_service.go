package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AlpeshT/event-booking-backend/internal/interval"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/repository"
	"github.com/AlpeshT/event-booking-backend/pkg/rabbitmq"
	"gorm.io/gorm"
)

// EventUpdate carries the fields of an update request; nil means unchanged.
type EventUpdate struct {
	Title         *string
	Description   *string
	StartTime     *time.Time
	EndTime       *time.Time
	Capacity      *int
	ParentEventID *string
}

type EventService interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	GetEvent(ctx context.Context, id string) (*models.Event, error)
	ListEvents(ctx context.Context, organizationID *string) ([]models.Event, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	tx        repository.TxManager
	publisher *rabbitmq.Publisher
}

func NewEventService(eventRepo repository.EventRepository, tx repository.TxManager, publisher *rabbitmq.Publisher) EventService {
	return &eventService{eventRepo: eventRepo, tx: tx, publisher: publisher}
}

func (s *eventService) CreateEvent(ctx context.Context, event *models.Event) error {
	if event.OrganizationID == "" {
		return ErrOrganizationRequired
	}
	if !event.Interval().IsValid() {
		return ErrInvalidTimeRange
	}

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		if event.ParentEventID != nil {
			if err := s.validateContainment(ctx, *event.ParentEventID, event.Interval()); err != nil {
				return err
			}
		}
		return s.eventRepo.Create(ctx, tx, event)
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.created", event)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*models.Event, error) {
	var updated *models.Event

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return ErrEventNotFound
		}

		if upd.Title != nil {
			event.Title = *upd.Title
		}
		if upd.Description != nil {
			event.Description = *upd.Description
		}
		if upd.StartTime != nil {
			event.StartTime = *upd.StartTime
		}
		if upd.EndTime != nil {
			event.EndTime = *upd.EndTime
		}
		if upd.Capacity != nil {
			event.Capacity = *upd.Capacity
		}
		if upd.ParentEventID != nil {
			event.ParentEventID = upd.ParentEventID
		}

		if !event.Interval().IsValid() {
			return ErrInvalidTimeRange
		}
		// Containment is re-checked against the resulting interval whenever
		// the event has a parent, whether or not the linkage itself changed.
		if event.ParentEventID != nil {
			if err := s.validateContainment(ctx, *event.ParentEventID, event.Interval()); err != nil {
				return err
			}
		}

		if err := s.eventRepo.Update(ctx, tx, event); err != nil {
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.updated", updated)
	}
	return updated, nil
}

func (s *eventService) validateContainment(ctx context.Context, parentID string, child interval.Interval) error {
	parent, err := s.eventRepo.FindByID(ctx, parentID)
	if err != nil {
		return ErrParentEventNotFound
	}
	if !interval.Contains(parent.Interval(), child) {
		return ErrInvalidContainment
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.eventRepo.FindByID(ctx, id); err != nil {
		return ErrEventNotFound
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("event.deleted", map[string]string{"id": id})
	}
	return nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, organizationID *string) ([]models.Event, error) {
	return s.eventRepo.FindAll(ctx, organizationID)
}
