package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/AlpeshT/event-booking-backend/internal/repository"
	"github.com/AlpeshT/event-booking-backend/pkg/keylock"
	"github.com/AlpeshT/event-booking-backend/pkg/rabbitmq"
	"gorm.io/gorm"
)

type AttendanceService interface {
	RegisterForEvent(ctx context.Context, eventID string, identity models.Identity) (*models.Attendee, error)
	CheckIn(ctx context.Context, attendeeID string) (*models.Attendance, error)
	GetEventAttendees(ctx context.Context, eventID string) ([]models.Attendee, error)
	GetUserAttendances(ctx context.Context, userID string) ([]models.Attendee, error)
}

type attendanceService struct {
	attendeeRepo   repository.AttendeeRepository
	attendanceRepo repository.AttendanceRepository
	eventRepo      repository.EventRepository
	userRepo       repository.UserRepository
	tx             repository.TxManager
	gate           *keylock.KeyLock
	publisher      *rabbitmq.Publisher
}

func NewAttendanceService(
	attendeeRepo repository.AttendeeRepository,
	attendanceRepo repository.AttendanceRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	tx repository.TxManager,
	gate *keylock.KeyLock,
	publisher *rabbitmq.Publisher,
) AttendanceService {
	return &attendanceService{
		attendeeRepo:   attendeeRepo,
		attendanceRepo: attendanceRepo,
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		tx:             tx,
		gate:           gate,
		publisher:      publisher,
	}
}

func (s *attendanceService) RegisterForEvent(ctx context.Context, eventID string, identity models.Identity) (*models.Attendee, error) {
	keys := []string{"event:" + eventID}
	if userID, ok := identity.UserID(); ok {
		// A user's double-booking check must not race against itself across
		// two simultaneous registrations.
		keys = append(keys, "user:"+userID)
	}
	release := s.gate.Acquire(keys...)
	defer release()

	var attendee *models.Attendee

	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		event, err := s.eventRepo.FindByIDForUpdate(ctx, tx, eventID)
		if err != nil {
			return ErrEventNotFound
		}

		count, err := s.attendeeRepo.CountByEvent(ctx, tx, eventID)
		if err != nil {
			return err
		}
		if count >= int64(event.Capacity) {
			return fmt.Errorf("%w: event %q is at full capacity (%d)", ErrCapacityExceeded, event.Title, event.Capacity)
		}

		a := &models.Attendee{EventID: eventID}

		if userID, ok := identity.UserID(); ok {
			user, err := s.userRepo.FindByID(ctx, userID)
			if err != nil {
				return ErrUserNotFound
			}
			if user.OrganizationID != event.OrganizationID {
				return ErrCrossOrgViolation
			}

			if _, err := s.attendeeRepo.FindByEventAndUser(ctx, tx, eventID, userID); err == nil {
				return ErrDuplicateRegistration
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			conflicts, err := s.attendeeRepo.FindOverlappingUserEvents(ctx, tx, userID, eventID, event.Interval())
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				c := conflicts[0]
				return &ScheduleConflictError{
					EventID: c.ID,
					Title:   c.Title,
					Start:   c.StartTime,
					End:     c.EndTime,
				}
			}

			a.UserID = &user.ID
		} else {
			// External attendees: only capacity is enforced.
			a.Email, a.Name = identity.Contact()
		}

		if err := s.attendeeRepo.Create(ctx, tx, a); err != nil {
			return err
		}
		attendee = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("attendee.registered", attendee)
	}
	return attendee, nil
}

func (s *attendanceService) CheckIn(ctx context.Context, attendeeID string) (*models.Attendance, error) {
	if _, err := s.attendeeRepo.FindByID(ctx, attendeeID); err != nil {
		return nil, ErrAttendeeNotFound
	}

	attendance := &models.Attendance{
		AttendeeID:  attendeeID,
		CheckedInAt: time.Now().UTC(),
	}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("attendee.checked_in", attendance)
	}
	return attendance, nil
}

func (s *attendanceService) GetEventAttendees(ctx context.Context, eventID string) ([]models.Attendee, error) {
	return s.attendeeRepo.FindByEventID(ctx, eventID)
}

func (s *attendanceService) GetUserAttendances(ctx context.Context, userID string) ([]models.Attendee, error) {
	return s.attendeeRepo.FindByUserID(ctx, userID)
}
