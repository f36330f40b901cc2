package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReportingService answers ad-hoc analytical questions over the same tables
// the admission services write. Reads are unlocked snapshots; they may
// observe allocations mid-flight, which is fine because reporting is
// advisory, not admission-bearing.
type ReportingService interface {
	FindDoubleBookedUsers(ctx context.Context) ([]DoubleBookedUser, error)
	FindViolatingEvents(ctx context.Context) ([]ConstraintViolation, error)
	GetResourceUtilization(ctx context.Context) ([]ResourceUtilization, error)
	FindInvalidChildEvents(ctx context.Context) ([]InvalidChildEvent, error)
	FindEventsWithExternalAttendees(ctx context.Context, threshold int) ([]ExternalAttendeeEvent, error)
	FindUnderutilizedResources(ctx context.Context, minUsageHours float64) ([]ResourceUtilization, error)
}

type DoubleBookedUser struct {
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Email       string    `json:"email"`
	Event1ID    string    `json:"event1_id"`
	Event1Title string    `json:"event1_title"`
	Event1Start time.Time `json:"event1_start"`
	Event1End   time.Time `json:"event1_end"`
	Event2ID    string    `json:"event2_id"`
	Event2Title string    `json:"event2_title"`
	Event2Start time.Time `json:"event2_start"`
	Event2End   time.Time `json:"event2_end"`
}

type ConstraintViolation struct {
	EventID         string `json:"event_id"`
	Title           string `json:"title"`
	ResourceID      string `json:"resource_id"`
	ResourceName    string `json:"resource_name"`
	ViolationType   string `json:"violation_type"`
	ConcurrentCount *int   `json:"concurrent_count,omitempty"`
	MaxAllowed      *int   `json:"max_allowed,omitempty"`
	TotalUsed       *int   `json:"total_used,omitempty"`
	Available       *int   `json:"available,omitempty"`
}

type ResourceUtilization struct {
	OrgID        string  `json:"org_id"`
	OrgName      *string `json:"org_name,omitempty"`
	ResourceID   string  `json:"resource_id"`
	ResourceName string  `json:"resource_name"`
	Type         string  `json:"type"`
	TotalHours   float64 `json:"total_hours"`
	EventCount   int     `json:"event_count"`
	Status       string  `json:"status"`
}

type InvalidChildEvent struct {
	ParentID    string    `json:"parent_id"`
	ParentTitle string    `json:"parent_title"`
	ParentStart time.Time `json:"parent_start"`
	ParentEnd   time.Time `json:"parent_end"`
	ChildID     string    `json:"child_id"`
	ChildTitle  string    `json:"child_title"`
	ChildStart  time.Time `json:"child_start"`
	ChildEnd    time.Time `json:"child_end"`
}

type ExternalAttendeeEvent struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	StartTime             time.Time `json:"start_time"`
	EndTime               time.Time `json:"end_time"`
	ExternalAttendeeCount int       `json:"external_attendee_count"`
}

type reportingService struct {
	db *gorm.DB
}

func NewReportingService(db *gorm.DB) ReportingService {
	return &reportingService{db: db}
}

func (s *reportingService) FindDoubleBookedUsers(ctx context.Context) ([]DoubleBookedUser, error) {
	var rows []DoubleBookedUser
	err := s.db.WithContext(ctx).Raw(`
		WITH user_events AS (
			SELECT
				u.id AS user_id,
				u.name AS user_name,
				u.email,
				e.id AS event_id,
				e.title,
				e.start_time,
				e.end_time
			FROM users u
			INNER JOIN attendees a ON a.user_id = u.id
			INNER JOIN events e ON e.id = a.event_id
		)
		SELECT DISTINCT
			ue1.user_id,
			ue1.user_name,
			ue1.email,
			ue1.event_id AS event1_id,
			ue1.title AS event1_title,
			ue1.start_time AS event1_start,
			ue1.end_time AS event1_end,
			ue2.event_id AS event2_id,
			ue2.title AS event2_title,
			ue2.start_time AS event2_start,
			ue2.end_time AS event2_end
		FROM user_events ue1
		INNER JOIN user_events ue2
			ON ue1.user_id = ue2.user_id
			AND ue1.event_id < ue2.event_id
			AND ue1.end_time > ue2.start_time
			AND ue1.start_time < ue2.end_time
		ORDER BY ue1.user_id
	`).Scan(&rows).Error
	return rows, err
}

func (s *reportingService) FindViolatingEvents(ctx context.Context) ([]ConstraintViolation, error) {
	var rows []ConstraintViolation
	err := s.db.WithContext(ctx).Raw(`
		WITH exclusive_violations AS (
			SELECT DISTINCT
				e1.id AS event_id,
				e1.title,
				r.id AS resource_id,
				r.name AS resource_name,
				'exclusive_double_booked' AS violation_type,
				NULL::int AS concurrent_count,
				NULL::int AS max_allowed,
				NULL::int AS total_used,
				NULL::int AS available
			FROM events e1
			INNER JOIN allocations al1 ON al1.event_id = e1.id
			INNER JOIN resources r ON r.id = al1.resource_id
			INNER JOIN events e2 ON e2.id <> e1.id
			INNER JOIN allocations al2 ON al2.event_id = e2.id AND al2.resource_id = r.id
			WHERE r.type = 'exclusive'
				AND e1.end_time > e2.start_time
				AND e1.start_time < e2.end_time
		),
		shareable_violations AS (
			SELECT
				e.id AS event_id,
				e.title,
				r.id AS resource_id,
				r.name AS resource_name,
				'shareable_over_allocated' AS violation_type,
				COUNT(*)::int AS concurrent_count,
				r.max_concurrent AS max_allowed,
				NULL::int AS total_used,
				NULL::int AS available
			FROM events e
			INNER JOIN allocations al ON al.event_id = e.id
			INNER JOIN resources r ON r.id = al.resource_id
			INNER JOIN events e2 ON e2.end_time > e.start_time AND e2.start_time < e.end_time
			INNER JOIN allocations al2 ON al2.event_id = e2.id AND al2.resource_id = r.id
			WHERE r.type = 'shareable'
			GROUP BY e.id, e.title, r.id, r.name, r.max_concurrent
			HAVING COUNT(*) > r.max_concurrent
		),
		consumable_violations AS (
			SELECT
				e.id AS event_id,
				e.title,
				r.id AS resource_id,
				r.name AS resource_name,
				'consumable_exceeded' AS violation_type,
				NULL::int AS concurrent_count,
				NULL::int AS max_allowed,
				SUM(al.quantity)::int AS total_used,
				r.total_quantity::int AS available
			FROM events e
			INNER JOIN allocations al ON al.event_id = e.id
			INNER JOIN resources r ON r.id = al.resource_id
			WHERE r.type = 'consumable'
			GROUP BY e.id, e.title, r.id, r.name, r.total_quantity
			HAVING SUM(al.quantity) > r.total_quantity
		)
		SELECT * FROM exclusive_violations
		UNION ALL
		SELECT * FROM shareable_violations
		UNION ALL
		SELECT * FROM consumable_violations
		ORDER BY violation_type, event_id
	`).Scan(&rows).Error
	return rows, err
}

func (s *reportingService) GetResourceUtilization(ctx context.Context) ([]ResourceUtilization, error) {
	var rows []ResourceUtilization
	err := s.db.WithContext(ctx).Raw(`
		WITH resource_usage AS (
			SELECT
				COALESCE(r.organization_id::text, 'global') AS org_id,
				o.name AS org_name,
				r.id AS resource_id,
				r.name AS resource_name,
				r.type,
				COALESCE(SUM(EXTRACT(EPOCH FROM (e.end_time - e.start_time)) / 3600), 0) AS total_hours,
				COUNT(DISTINCT al.event_id) AS event_count
			FROM resources r
			LEFT JOIN allocations al ON al.resource_id = r.id
			LEFT JOIN events e ON e.id = al.event_id
			LEFT JOIN organizations o ON o.id = r.organization_id
			GROUP BY COALESCE(r.organization_id::text, 'global'), o.name, r.id, r.name, r.type
		),
		ranked AS (
			SELECT *,
				ROW_NUMBER() OVER (PARTITION BY org_id ORDER BY total_hours DESC) AS utilization_rank,
				COUNT(*) OVER (PARTITION BY org_id) AS org_total
			FROM resource_usage
		)
		SELECT
			org_id,
			org_name,
			resource_id,
			resource_name,
			type,
			total_hours,
			event_count,
			CASE
				WHEN total_hours = 0 THEN 'underutilized'
				WHEN utilization_rank > org_total * 0.5 THEN 'underutilized'
				ELSE 'active'
			END AS status
		FROM ranked
		ORDER BY org_id, total_hours DESC
	`).Scan(&rows).Error
	return rows, err
}

func (s *reportingService) FindInvalidChildEvents(ctx context.Context) ([]InvalidChildEvent, error) {
	var rows []InvalidChildEvent
	err := s.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			pe.id AS parent_id,
			pe.title AS parent_title,
			pe.start_time AS parent_start,
			pe.end_time AS parent_end,
			ce.id AS child_id,
			ce.title AS child_title,
			ce.start_time AS child_start,
			ce.end_time AS child_end
		FROM events pe
		INNER JOIN events ce ON ce.parent_event_id = pe.id
		WHERE ce.start_time < pe.start_time OR ce.end_time > pe.end_time
		ORDER BY pe.id
	`).Scan(&rows).Error
	return rows, err
}

func (s *reportingService) FindEventsWithExternalAttendees(ctx context.Context, threshold int) ([]ExternalAttendeeEvent, error) {
	var rows []ExternalAttendeeEvent
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.title,
			e.start_time,
			e.end_time,
			COUNT(*) AS external_attendee_count
		FROM events e
		INNER JOIN attendees a ON a.event_id = e.id
		WHERE a.user_id IS NULL
		GROUP BY e.id, e.title, e.start_time, e.end_time
		HAVING COUNT(*) >= ?
		ORDER BY external_attendee_count DESC
	`, threshold).Scan(&rows).Error
	return rows, err
}

func (s *reportingService) FindUnderutilizedResources(ctx context.Context, minUsageHours float64) ([]ResourceUtilization, error) {
	var rows []ResourceUtilization
	err := s.db.WithContext(ctx).Raw(`
		WITH resource_usage AS (
			SELECT
				COALESCE(r.organization_id::text, 'global') AS org_id,
				o.name AS org_name,
				r.id AS resource_id,
				r.name AS resource_name,
				r.type,
				COALESCE(SUM(EXTRACT(EPOCH FROM (e.end_time - e.start_time)) / 3600), 0) AS total_hours,
				COUNT(DISTINCT al.event_id) AS event_count
			FROM resources r
			LEFT JOIN allocations al ON al.resource_id = r.id
			LEFT JOIN events e ON e.id = al.event_id
			LEFT JOIN organizations o ON o.id = r.organization_id
			GROUP BY COALESCE(r.organization_id::text, 'global'), o.name, r.id, r.name, r.type
		)
		SELECT
			org_id,
			org_name,
			resource_id,
			resource_name,
			type,
			total_hours,
			event_count,
			CASE
				WHEN total_hours = 0 THEN 'unused'
				ELSE 'underutilized'
			END AS status
		FROM resource_usage
		WHERE total_hours < ?
		ORDER BY total_hours ASC, org_id
	`, minUsageHours).Scan(&rows).Error
	return rows, err
}
