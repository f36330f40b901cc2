package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ts(hour, min int) time.Time {
	return time.Date(2026, 4, 10, hour, min, 0, 0, time.UTC)
}

func conferenceEvent() *models.Event {
	return &models.Event{
		ID:             "conf-1",
		Title:          "Annual Conference",
		StartTime:      ts(9, 0),
		EndTime:        ts(17, 0),
		Capacity:       200,
		OrganizationID: "org-1",
	}
}

func TestCreateEvent_Success(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, tx *gorm.DB, event *models.Event) error {
			event.ID = "evt-1"
			return nil
		},
	}

	svc := NewEventService(repo, mockTx{}, nil)
	event := &models.Event{
		Title:          "Workshop",
		StartTime:      ts(10, 0),
		EndTime:        ts(12, 0),
		Capacity:       30,
		OrganizationID: "org-1",
	}

	err := svc.CreateEvent(context.Background(), event)

	assert.NoError(t, err)
	assert.Equal(t, "evt-1", event.ID)
}

func TestCreateEvent_InvalidTimeRange(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, mockTx{}, nil)

	event := &models.Event{
		Title:          "Backwards",
		StartTime:      ts(12, 0),
		EndTime:        ts(10, 0),
		Capacity:       30,
		OrganizationID: "org-1",
	}
	assert.ErrorIs(t, svc.CreateEvent(context.Background(), event), ErrInvalidTimeRange)

	// empty interval is invalid too
	event.EndTime = event.StartTime
	assert.ErrorIs(t, svc.CreateEvent(context.Background(), event), ErrInvalidTimeRange)
}

func TestCreateEvent_MissingOrganization(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, mockTx{}, nil)

	event := &models.Event{
		Title:     "Orphan",
		StartTime: ts(10, 0),
		EndTime:   ts(12, 0),
		Capacity:  30,
	}

	assert.ErrorIs(t, svc.CreateEvent(context.Background(), event), ErrOrganizationRequired)
}

func TestCreateEvent_ParentNotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	parentID := "missing"
	event := &models.Event{
		Title:          "Session",
		StartTime:      ts(10, 0),
		EndTime:        ts(11, 0),
		Capacity:       30,
		OrganizationID: "org-1",
		ParentEventID:  &parentID,
	}

	assert.ErrorIs(t, svc.CreateEvent(context.Background(), event), ErrParentEventNotFound)
}

func TestCreateEvent_ChildOutsideParentBounds(t *testing.T) {
	parent := conferenceEvent()
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			require.Equal(t, parent.ID, id)
			return parent, nil
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	child := &models.Event{
		Title:          "Early Session",
		StartTime:      ts(8, 0), // before parent's 09:00
		EndTime:        ts(10, 0),
		Capacity:       30,
		OrganizationID: "org-1",
		ParentEventID:  &parent.ID,
	}

	assert.ErrorIs(t, svc.CreateEvent(context.Background(), child), ErrInvalidContainment)
}

func TestCreateEvent_ChildWithinParentBounds(t *testing.T) {
	parent := conferenceEvent()
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			return parent, nil
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	child := &models.Event{
		Title:          "Morning Session",
		StartTime:      ts(9, 0), // shared start is allowed
		EndTime:        ts(11, 0),
		Capacity:       30,
		OrganizationID: "org-1",
		ParentEventID:  &parent.ID,
	}

	assert.NoError(t, svc.CreateEvent(context.Background(), child))
}

func TestUpdateEvent_NotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, mockTx{}, nil)

	_, err := svc.UpdateEvent(context.Background(), "missing", EventUpdate{})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestUpdateEvent_RevalidatesContainmentWithResultingTimes(t *testing.T) {
	parent := conferenceEvent()
	child := &models.Event{
		ID:             "child-1",
		Title:          "Session",
		StartTime:      ts(10, 0),
		EndTime:        ts(11, 0),
		Capacity:       30,
		OrganizationID: "org-1",
		ParentEventID:  &parent.ID,
	}

	repo := &mockEventRepo{
		findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
			copy := *child
			return &copy, nil
		},
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			return parent, nil
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	// Only EndTime moves; resulting interval 10:00-18:00 escapes the parent.
	late := ts(18, 0)
	_, err := svc.UpdateEvent(context.Background(), child.ID, EventUpdate{EndTime: &late})
	assert.ErrorIs(t, err, ErrInvalidContainment)

	// Resulting interval 10:00-16:00 stays inside.
	ok := ts(16, 0)
	updated, err := svc.UpdateEvent(context.Background(), child.ID, EventUpdate{EndTime: &ok})
	assert.NoError(t, err)
	assert.Equal(t, ok, updated.EndTime)
	assert.Equal(t, ts(10, 0), updated.StartTime, "start falls back to stored value")
}

func TestUpdateEvent_SettingParentValidatesExistingTimes(t *testing.T) {
	parent := conferenceEvent()
	standalone := &models.Event{
		ID:             "evt-2",
		Title:          "Evening Social",
		StartTime:      ts(18, 0),
		EndTime:        ts(20, 0),
		Capacity:       50,
		OrganizationID: "org-1",
	}

	repo := &mockEventRepo{
		findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
			copy := *standalone
			return &copy, nil
		},
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			return parent, nil
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	_, err := svc.UpdateEvent(context.Background(), standalone.ID, EventUpdate{ParentEventID: &parent.ID})

	assert.ErrorIs(t, err, ErrInvalidContainment)
}

func TestUpdateEvent_InvalidResultingTimeRange(t *testing.T) {
	event := conferenceEvent()
	repo := &mockEventRepo{
		findByIDForUpdateFn: func(ctx context.Context, tx *gorm.DB, id string) (*models.Event, error) {
			copy := *event
			return &copy, nil
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	badEnd := ts(8, 0) // before the stored 09:00 start
	_, err := svc.UpdateEvent(context.Background(), event.ID, EventUpdate{EndTime: &badEnd})

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	svc := NewEventService(&mockEventRepo{}, mockTx{}, nil)

	assert.ErrorIs(t, svc.DeleteEvent(context.Background(), "missing"), ErrEventNotFound)
}

func TestDeleteEvent_Success(t *testing.T) {
	deleted := ""
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Event, error) {
			return conferenceEvent(), nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	assert.NoError(t, svc.DeleteEvent(context.Background(), "conf-1"))
	assert.Equal(t, "conf-1", deleted)
}

func TestListEvents_PassesOrgFilter(t *testing.T) {
	var captured *string
	repo := &mockEventRepo{
		findAllFn: func(ctx context.Context, organizationID *string) ([]models.Event, error) {
			captured = organizationID
			return []models.Event{*conferenceEvent()}, nil
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	org := "org-1"
	events, err := svc.ListEvents(context.Background(), &org)

	assert.NoError(t, err)
	assert.Len(t, events, 1)
	require.NotNil(t, captured)
	assert.Equal(t, "org-1", *captured)
}

func TestCreateEvent_RepoError(t *testing.T) {
	repo := &mockEventRepo{
		createFn: func(ctx context.Context, tx *gorm.DB, event *models.Event) error {
			return errors.New("db connection failed")
		},
	}
	svc := NewEventService(repo, mockTx{}, nil)

	err := svc.CreateEvent(context.Background(), &models.Event{
		Title:          "Workshop",
		StartTime:      ts(10, 0),
		EndTime:        ts(12, 0),
		Capacity:       30,
		OrganizationID: "org-1",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
}
