package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/retry"
	"github.com/yigit/schoolportal/internal/pkg/validation"
)

// WeekInput opens a school week for a cohort
type WeekInput struct {
	WeekNumber   int    `json:"weekNumber" validate:"gte=1"`
	AcademicYear string `json:"academicYear" validate:"notblank"`
	Grade        string `json:"grade" validate:"notblank"`
	ClassSection string `json:"classSection" validate:"notblank"`
}

// AttendanceInput marks one student's periods for one day of a week
type AttendanceInput struct {
	StudentID uuid.UUID                  `json:"studentId"`
	WeekID    uuid.UUID                  `json:"weekId"`
	DayOfWeek int                        `json:"dayOfWeek" validate:"gte=0,lte=6"`
	Periods   [models.PeriodsPerDay]bool `json:"periods"`
}

// AttendanceService defines the interface for attendance operations
type AttendanceService interface {
	CreateWeek(ctx context.Context, in WeekInput) (*models.Week, error)
	RecordAttendance(ctx context.Context, in AttendanceInput) (*models.Attendance, error)
	ListStudentAttendance(ctx context.Context, studentID uuid.UUID) ([]models.Attendance, error)
}

type attendanceServiceImpl struct {
	store  repositories.Store
	retry  retry.Policy
	logger zerolog.Logger
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(store repositories.Store, policy retry.Policy, logger zerolog.Logger) AttendanceService {
	return &attendanceServiceImpl{
		store:  store,
		retry:  policy,
		logger: logger,
	}
}

func (s *attendanceServiceImpl) CreateWeek(ctx context.Context, in WeekInput) (*models.Week, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	week := &models.Week{
		WeekNumber: in.WeekNumber,
		Cohort: models.Cohort{
			AcademicYear: in.AcademicYear,
			Grade:        in.Grade,
			ClassSection: in.ClassSection,
		},
	}
	if err := s.store.Weeks().Create(ctx, week); err != nil {
		return nil, err
	}
	return week, nil
}

// RecordAttendance stores a day of attendance. The student must belong to the
// cohort the week was opened for.
func (s *attendanceServiceImpl) RecordAttendance(ctx context.Context, in AttendanceInput) (*models.Attendance, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	student, err := retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) (*models.Student, error) {
		return s.store.Students().GetByID(ctx, in.StudentID)
	})
	if err != nil {
		return nil, err
	}
	week, err := retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) (*models.Week, error) {
		return s.store.Weeks().GetByID(ctx, in.WeekID)
	})
	if err != nil {
		return nil, err
	}
	if !week.Cohort.Matches(student.Cohort) {
		return nil, apperrors.NewValidationError("weekId", "week belongs to a different cohort than the student")
	}

	row := &models.Attendance{
		StudentID: in.StudentID,
		WeekID:    in.WeekID,
		DayOfWeek: in.DayOfWeek,
		Periods:   in.Periods,
	}
	if err := s.store.Attendance().Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *attendanceServiceImpl) ListStudentAttendance(ctx context.Context, studentID uuid.UUID) ([]models.Attendance, error) {
	return retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) ([]models.Attendance, error) {
		return s.store.Attendance().ListByStudent(ctx, studentID)
	})
}
