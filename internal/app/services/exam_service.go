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

// ExamInput schedules an exam for a cohort
type ExamInput struct {
	ExamName        string `json:"examName" validate:"notblank"`
	ExamDate        string `json:"examDate" validate:"notblank,datetime=2006-01-02"`
	DurationMinutes int    `json:"duration" validate:"gte=1"`
	AcademicYear    string `json:"academicYear" validate:"notblank"`
	Grade           string `json:"grade" validate:"notblank"`
	ClassSection    string `json:"classSection" validate:"notblank"`
}

// ResultInput is one student's result for an exam
type ResultInput struct {
	StudentID   uuid.UUID `json:"studentId"`
	ExamID      uuid.UUID `json:"examId"`
	Score       float64   `json:"score" validate:"gte=0,lte=100"`
	Passed      bool      `json:"passed"`
	GradeRating string    `json:"gradeRating"`
}

// ExamService defines the interface for exam operations
type ExamService interface {
	CreateExam(ctx context.Context, in ExamInput) (*models.Exam, error)
	RecordResult(ctx context.Context, in ResultInput) (*models.StudentExam, error)
	ListStudentResults(ctx context.Context, studentID uuid.UUID) ([]models.StudentExam, error)
}

type examServiceImpl struct {
	store  repositories.Store
	retry  retry.Policy
	logger zerolog.Logger
}

// NewExamService creates a new exam service instance
func NewExamService(store repositories.Store, policy retry.Policy, logger zerolog.Logger) ExamService {
	return &examServiceImpl{
		store:  store,
		retry:  policy,
		logger: logger,
	}
}

func (s *examServiceImpl) CreateExam(ctx context.Context, in ExamInput) (*models.Exam, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	exam := &models.Exam{
		ExamName:        in.ExamName,
		ExamDate:        in.ExamDate,
		DurationMinutes: in.DurationMinutes,
		Cohort: models.Cohort{
			AcademicYear: in.AcademicYear,
			Grade:        in.Grade,
			ClassSection: in.ClassSection,
		},
	}
	if err := s.store.Exams().Create(ctx, exam); err != nil {
		return nil, err
	}

	s.logger.Info().Str("examID", exam.ID.String()).Str("examName", exam.ExamName).Msg("Exam created")
	return exam, nil
}

// RecordResult stores a score for a student who sat an exam of their cohort.
func (s *examServiceImpl) RecordResult(ctx context.Context, in ResultInput) (*models.StudentExam, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	exam, err := retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) (*models.Exam, error) {
		return s.store.Exams().GetByID(ctx, in.ExamID)
	})
	if err != nil {
		return nil, err
	}
	student, err := retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) (*models.Student, error) {
		return s.store.Students().GetByID(ctx, in.StudentID)
	})
	if err != nil {
		return nil, err
	}
	if !exam.Cohort.Matches(student.Cohort) {
		return nil, apperrors.NewValidationError("studentId", "student is not in the exam's cohort")
	}

	result := &models.StudentExam{
		StudentID:   in.StudentID,
		ExamID:      in.ExamID,
		Score:       in.Score,
		Passed:      in.Passed,
		GradeRating: in.GradeRating,
	}
	if err := s.store.Exams().CreateResult(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *examServiceImpl) ListStudentResults(ctx context.Context, studentID uuid.UUID) ([]models.StudentExam, error) {
	return retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) ([]models.StudentExam, error) {
		return s.store.Exams().ListResultsByStudent(ctx, studentID)
	})
}
