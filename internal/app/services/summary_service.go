package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/retry"
	"golang.org/x/sync/errgroup"
)

// SummaryService derives a student's academic summary
type SummaryService interface {
	ComputeStudentSummary(ctx context.Context, studentID uuid.UUID) (*models.SummaryStats, error)
}

type summaryServiceImpl struct {
	store  repositories.Store
	retry  retry.Policy
	logger zerolog.Logger
}

// NewSummaryService creates a new summary service instance
func NewSummaryService(store repositories.Store, policy retry.Policy, logger zerolog.Logger) SummaryService {
	return &summaryServiceImpl{
		store:  store,
		retry:  policy,
		logger: logger,
	}
}

// ComputeStudentSummary reads attendance, assignments and exam results
// concurrently and folds them once all three have returned. If any read fails
// the others are cancelled and no summary is produced. An unknown student has
// no rows and gets the zero summary.
func (s *summaryServiceImpl) ComputeStudentSummary(ctx context.Context, studentID uuid.UUID) (*models.SummaryStats, error) {
	var (
		attendance []models.Attendance
		tasks      []models.StudentTask
		exams      []models.StudentExam
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		attendance, err = retry.Do(gctx, s.retry, s.logger, func(ctx context.Context) ([]models.Attendance, error) {
			return s.store.Attendance().ListByStudent(ctx, studentID)
		})
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = retry.Do(gctx, s.retry, s.logger, func(ctx context.Context) ([]models.StudentTask, error) {
			return s.store.StudentTasks().ListByStudent(ctx, studentID)
		})
		return err
	})
	g.Go(func() error {
		var err error
		exams, err = retry.Do(gctx, s.retry, s.logger, func(ctx context.Context) ([]models.StudentExam, error) {
			return s.store.Exams().ListResultsByStudent(ctx, studentID)
		})
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Str("studentID", studentID.String()).Msg("Failed to read summary sources")
		if !errors.Is(err, apperrors.ErrPersistence) {
			err = apperrors.NewPersistenceError("compute student summary", err, false)
		}
		return nil, err
	}

	stats := models.Summarize(attendance, tasks, exams)
	return &stats, nil
}
