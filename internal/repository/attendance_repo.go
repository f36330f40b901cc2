package repository

import (
	"context"

	"github.com/AlpeshT/event-booking-backend/internal/models"
	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance *models.Attendance) error
	FindByAttendeeID(ctx context.Context, attendeeID string) ([]models.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepository) FindByAttendeeID(ctx context.Context, attendeeID string) ([]models.Attendance, error) {
	var attendances []models.Attendance
	err := r.db.WithContext(ctx).
		Where("attendee_id = ?", attendeeID).
		Order("checked_in_at ASC").
		Find(&attendances).Error
	if err != nil {
		return nil, err
	}
	return attendances, nil
}
