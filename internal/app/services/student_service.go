package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/helpers"
	"github.com/yigit/schoolportal/internal/pkg/retry"
	"github.com/yigit/schoolportal/internal/pkg/validation"
)

// StudentInput registers a student in a cohort
type StudentInput struct {
	FullName      string `json:"fullName" validate:"notblank"`
	NationalID    string `json:"nationalId" validate:"notblank"`
	AcademicYear  string `json:"academicYear" validate:"notblank"`
	Grade         string `json:"grade" validate:"notblank"`
	ClassSection  string `json:"classSection" validate:"notblank"`
	GuardianPhone string `json:"guardianPhone"`
}

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, in StudentInput) (*models.Student, error)
	GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
	ListStudents(ctx context.Context, filter models.StudentFilter, page, size int) (*dto.StudentListResponse, error)
}

type studentServiceImpl struct {
	store  repositories.Store
	retry  retry.Policy
	logger zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(store repositories.Store, policy retry.Policy, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		store:  store,
		retry:  policy,
		logger: logger,
	}
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, in StudentInput) (*models.Student, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	student := &models.Student{
		FullName:   in.FullName,
		NationalID: in.NationalID,
		Cohort: models.Cohort{
			AcademicYear: in.AcademicYear,
			Grade:        in.Grade,
			ClassSection: in.ClassSection,
		},
		GuardianPhone: in.GuardianPhone,
	}
	if err := s.store.Students().Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", student.ID.String()).Msg("Student created")
	return student, nil
}

func (s *studentServiceImpl) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	return retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) (*models.Student, error) {
		return s.store.Students().GetByID(ctx, id)
	})
}

// ListStudents returns one page of students ordered by full name
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter models.StudentFilter, page, size int) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	filter.Offset, filter.Limit = offset, limit

	total, err := retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) (int64, error) {
		return s.store.Students().Count(ctx, filter)
	})
	if err != nil {
		return nil, err
	}

	students, err := retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) ([]models.Student, error) {
		return s.store.Students().List(ctx, filter)
	})
	if err != nil {
		return nil, err
	}

	return &dto.StudentListResponse{
		Students:       dto.NewStudentResponses(students),
		PaginationInfo: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}
