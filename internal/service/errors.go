package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrParentEventNotFound  = errors.New("parent event not found")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrAttendeeNotFound     = errors.New("attendee not found")
	ErrOrganizationNotFound = errors.New("organization not found")

	ErrOrganizationRequired = errors.New("organization id is required")
	ErrInvalidTimeRange     = errors.New("event end time must be after start time")
	ErrInvalidContainment   = errors.New("child event must be within parent event time bounds")
	ErrInvalidResourceType  = errors.New("resource type must be exclusive, shareable or consumable")
	ErrInvalidQuantity      = errors.New("allocation quantity must be positive")

	ErrCapacityExceeded      = errors.New("capacity exceeded")
	ErrDuplicateRegistration = errors.New("user is already registered for this event")
	ErrDuplicateAllocation   = errors.New("resource is already allocated to this event")
	ErrCrossOrgViolation     = errors.New("user can only register for events within their organization")
)

// ScheduleConflictError reports the first already-registered event whose
// interval overlaps the one the user is trying to join.
type ScheduleConflictError struct {
	EventID string
	Title   string
	Start   time.Time
	End     time.Time
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf(
		"user is already registered for an overlapping event: %q (%s - %s)",
		e.Title, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339),
	)
}

// ResourceConflictError reports the event that already holds an exclusive
// resource during an overlapping window.
type ResourceConflictError struct {
	EventID string
	Title   string
	Start   time.Time
	End     time.Time
}

func (e *ResourceConflictError) Error() string {
	return fmt.Sprintf(
		"resource is already allocated to %q (%s - %s) during this time",
		e.Title, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339),
	)
}
