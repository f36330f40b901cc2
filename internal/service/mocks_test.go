package service

import (
	"context"
	"sync"

	"github.com/AlpeshT/event-booking-backend/internal/interval"
	"github.com/AlpeshT/event-booking-backend/internal/models"
	"gorm.io/gorm"
)

// mockTx runs the transaction body directly; unit tests exercise the
// admission logic without a database.
type mockTx struct{}

func (mockTx) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

// --- Mock EventRepository ---

type mockEventRepo struct {
	createFn            func(ctx context.Context, tx *gorm.DB, event *models.Event) error
	findByIDFn          func(ctx context.Context, id string) (*models.Event, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error)
	findAllFn           func(ctx context.Context, organizationID *string) ([]models.Event, error)
	updateFn            func(ctx context.Context, tx *gorm.DB, event *models.Event) error
	deleteFn            func(ctx context.Context, id string) error
}

func (m *mockEventRepo) Create(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, event)
	}
	return nil
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*models.Event, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
	if m.findByIDForUpdateFn != nil {
		return m.findByIDForUpdateFn(ctx, tx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) FindAll(ctx context.Context, organizationID *string) ([]models.Event, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, organizationID)
	}
	return nil, nil
}

func (m *mockEventRepo) Update(ctx context.Context, tx *gorm.DB, event *models.Event) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tx, event)
	}
	return nil
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	findByIDFn func(ctx context.Context, id string) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error { return nil }
func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockUserRepo) FindAll(ctx context.Context, organizationID *string) ([]models.User, error) {
	return nil, nil
}
func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error { return nil }
func (m *mockUserRepo) Delete(ctx context.Context, id string) error         { return nil }

// --- Mock AttendeeRepository ---

type mockAttendeeRepo struct {
	createFn             func(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error
	findByIDFn           func(ctx context.Context, id string) (*models.Attendee, error)
	findByEventAndUserFn func(ctx context.Context, tx *gorm.DB, eventID, userID string) (*models.Attendee, error)
	countByEventFn       func(ctx context.Context, tx *gorm.DB, eventID string) (int64, error)
	findOverlappingFn    func(ctx context.Context, tx *gorm.DB, userID, excludeEventID string, window interval.Interval) ([]models.Event, error)
	findByEventIDFn      func(ctx context.Context, eventID string) ([]models.Attendee, error)
	findByUserIDFn       func(ctx context.Context, userID string) ([]models.Attendee, error)
}

func (m *mockAttendeeRepo) Create(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, attendee)
	}
	return nil
}

func (m *mockAttendeeRepo) FindByID(ctx context.Context, id string) (*models.Attendee, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendeeRepo) FindByEventAndUser(ctx context.Context, tx *gorm.DB, eventID, userID string) (*models.Attendee, error) {
	if m.findByEventAndUserFn != nil {
		return m.findByEventAndUserFn(ctx, tx, eventID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendeeRepo) CountByEvent(ctx context.Context, tx *gorm.DB, eventID string) (int64, error) {
	if m.countByEventFn != nil {
		return m.countByEventFn(ctx, tx, eventID)
	}
	return 0, nil
}

func (m *mockAttendeeRepo) FindByEventID(ctx context.Context, eventID string) ([]models.Attendee, error) {
	if m.findByEventIDFn != nil {
		return m.findByEventIDFn(ctx, eventID)
	}
	return nil, nil
}

func (m *mockAttendeeRepo) FindByUserID(ctx context.Context, userID string) ([]models.Attendee, error) {
	if m.findByUserIDFn != nil {
		return m.findByUserIDFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockAttendeeRepo) FindOverlappingUserEvents(ctx context.Context, tx *gorm.DB, userID, excludeEventID string, window interval.Interval) ([]models.Event, error) {
	if m.findOverlappingFn != nil {
		return m.findOverlappingFn(ctx, tx, userID, excludeEventID, window)
	}
	return nil, nil
}

// --- Mock AttendanceRepository ---

type mockAttendanceRepo struct {
	createFn func(ctx context.Context, attendance *models.Attendance) error
}

func (m *mockAttendanceRepo) Create(ctx context.Context, attendance *models.Attendance) error {
	if m.createFn != nil {
		return m.createFn(ctx, attendance)
	}
	return nil
}

func (m *mockAttendanceRepo) FindByAttendeeID(ctx context.Context, attendeeID string) ([]models.Attendance, error) {
	return nil, nil
}

// --- Mock ResourceRepository ---

type mockResourceRepo struct {
	createFn            func(ctx context.Context, resource *models.Resource) error
	findByIDFn          func(ctx context.Context, id string) (*models.Resource, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id string) (*models.Resource, error)
}

func (m *mockResourceRepo) Create(ctx context.Context, resource *models.Resource) error {
	if m.createFn != nil {
		return m.createFn(ctx, resource)
	}
	return nil
}

func (m *mockResourceRepo) FindByID(ctx context.Context, id string) (*models.Resource, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResourceRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id string) (*models.Resource, error) {
	if m.findByIDForUpdateFn != nil {
		return m.findByIDForUpdateFn(ctx, tx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockResourceRepo) FindAll(ctx context.Context, organizationID *string) ([]models.Resource, error) {
	return nil, nil
}
func (m *mockResourceRepo) Update(ctx context.Context, resource *models.Resource) error { return nil }
func (m *mockResourceRepo) Delete(ctx context.Context, id string) error                 { return nil }

// --- Mock AllocationRepository ---

type mockAllocationRepo struct {
	createFn                  func(ctx context.Context, tx *gorm.DB, allocation *models.Allocation) error
	findByEventAndResourceFn  func(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (*models.Allocation, error)
	findOverlappingHoldersFn  func(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) ([]models.Event, error)
	countOverlappingHoldersFn func(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) (int64, error)
	sumQuantityFn             func(ctx context.Context, tx *gorm.DB, resourceID string) (int64, error)
	deleteFn                  func(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (int64, error)
}

func (m *mockAllocationRepo) Create(ctx context.Context, tx *gorm.DB, allocation *models.Allocation) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, allocation)
	}
	return nil
}

func (m *mockAllocationRepo) FindByEventAndResource(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (*models.Allocation, error) {
	if m.findByEventAndResourceFn != nil {
		return m.findByEventAndResourceFn(ctx, tx, eventID, resourceID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAllocationRepo) FindByEventID(ctx context.Context, eventID string) ([]models.Allocation, error) {
	return nil, nil
}

func (m *mockAllocationRepo) FindOverlappingHolders(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) ([]models.Event, error) {
	if m.findOverlappingHoldersFn != nil {
		return m.findOverlappingHoldersFn(ctx, tx, resourceID, excludeEventID, window)
	}
	return nil, nil
}

func (m *mockAllocationRepo) CountOverlappingHolders(ctx context.Context, tx *gorm.DB, resourceID, excludeEventID string, window interval.Interval) (int64, error) {
	if m.countOverlappingHoldersFn != nil {
		return m.countOverlappingHoldersFn(ctx, tx, resourceID, excludeEventID, window)
	}
	return 0, nil
}

func (m *mockAllocationRepo) SumQuantity(ctx context.Context, tx *gorm.DB, resourceID string) (int64, error) {
	if m.sumQuantityFn != nil {
		return m.sumQuantityFn(ctx, tx, resourceID)
	}
	return 0, nil
}

func (m *mockAllocationRepo) DeleteByEventAndResource(ctx context.Context, tx *gorm.DB, eventID, resourceID string) (int64, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tx, eventID, resourceID)
	}
	return 0, nil
}

// memAttendeeStore is a map-backed attendee repository used by concurrency
// tests; the gate serializes access per event, so no extra locking beyond
// the counter mutex is needed for assertion reads at the end.
type memAttendeeStore struct {
	mockAttendeeRepo
	mu        sync.Mutex
	attendees []models.Attendee
}

func (s *memAttendeeStore) Create(ctx context.Context, tx *gorm.DB, attendee *models.Attendee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendees = append(s.attendees, *attendee)
	return nil
}

func (s *memAttendeeStore) CountByEvent(ctx context.Context, tx *gorm.DB, eventID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, a := range s.attendees {
		if a.EventID == eventID {
			n++
		}
	}
	return n, nil
}
