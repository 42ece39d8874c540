package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/retry"
	"github.com/yigit/schoolportal/internal/pkg/validation"
)

// TaskInput is what a teacher submits to create a task for a cohort.
// Values are stored exactly as given; blankness is checked on trimmed copies.
type TaskInput struct {
	Title        string `json:"title" validate:"notblank"`
	Description  string `json:"description" validate:"notblank"`
	DueDate      string `json:"dueDate" validate:"notblank,datetime=2006-01-02"`
	AcademicYear string `json:"academicYear" validate:"notblank"`
	Grade        string `json:"grade" validate:"notblank"`
	ClassSection string `json:"classSection" validate:"notblank"`
}

// TaskResult is the created task with the assignments fanned out to its cohort
type TaskResult struct {
	Task          models.Task
	Assignments   []models.StudentTask
	AssignedCount int
}

// AssignmentNotifier is told about assignments once they are committed
type AssignmentNotifier interface {
	NotifyAssigned(ctx context.Context, task models.Task, assignments []models.StudentTask)
}

// TaskService defines the interface for task-related operations
type TaskService interface {
	CreateTaskWithAssignments(ctx context.Context, in TaskInput) (*TaskResult, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListStudentTasks(ctx context.Context, studentID uuid.UUID) ([]models.StudentTaskDetail, error)
}

type taskServiceImpl struct {
	store    repositories.Store
	retry    retry.Policy
	notifier AssignmentNotifier
	logger   zerolog.Logger
}

// NewTaskService creates a new task service instance. notifier may be nil.
func NewTaskService(store repositories.Store, policy retry.Policy, notifier AssignmentNotifier, logger zerolog.Logger) TaskService {
	return &taskServiceImpl{
		store:    store,
		retry:    policy,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateTaskWithAssignments inserts the task and one pending assignment per
// student of the task's cohort. Both writes share a transaction, so either the
// task and all its assignments persist or nothing does.
func (s *taskServiceImpl) CreateTaskWithAssignments(ctx context.Context, in TaskInput) (*TaskResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	task := models.Task{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		Cohort: models.Cohort{
			AcademicYear: in.AcademicYear,
			Grade:        in.Grade,
			ClassSection: in.ClassSection,
		},
	}

	var assignments []models.StudentTask
	err := s.store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		if err := tx.Tasks().Create(ctx, &task); err != nil {
			return err
		}

		students, err := tx.Students().List(ctx, models.CohortFilter(task.Cohort))
		if err != nil {
			return err
		}
		if len(students) == 0 {
			assignments = []models.StudentTask{}
			return nil
		}

		drafts := make([]models.StudentTask, 0, len(students))
		for _, st := range students {
			drafts = append(drafts, models.StudentTask{
				StudentID: st.ID,
				TaskID:    task.ID,
				Status:    models.TaskStatusPending,
			})
		}

		created, err := tx.StudentTasks().CreateBatch(ctx, drafts)
		if err != nil {
			s.logger.Error().Err(err).
				Str("taskID", task.ID.String()).
				Interface("cohort", task.Cohort).
				Int("students", len(drafts)).
				Msg("Assignment fan-out failed, rolling back task")
			return err
		}
		if len(created) != len(drafts) {
			s.logger.Error().
				Str("taskID", task.ID.String()).
				Int("expected", len(drafts)).
				Int("inserted", len(created)).
				Msg("Assignment fan-out incomplete, rolling back task")
			return apperrors.NewCustomError(apperrors.ErrPartialFanout,
				fmt.Sprintf("task %s: %d of %d assignments inserted", task.ID, len(created), len(drafts)))
		}

		assignments = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("taskID", task.ID.String()).
		Int("assigned", len(assignments)).
		Msg("Task created")

	if s.notifier != nil && len(assignments) > 0 {
		s.notifier.NotifyAssigned(ctx, task, assignments)
	}

	return &TaskResult{
		Task:          task,
		Assignments:   assignments,
		AssignedCount: len(assignments),
	}, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]models.Task, error) {
	return retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) ([]models.Task, error) {
		return s.store.Tasks().List(ctx)
	})
}

func (s *taskServiceImpl) ListStudentTasks(ctx context.Context, studentID uuid.UUID) ([]models.StudentTaskDetail, error) {
	return retry.Do(ctx, s.retry, s.logger, func(ctx context.Context) ([]models.StudentTaskDetail, error) {
		return s.store.StudentTasks().ListDetailsByStudent(ctx, studentID)
	})
}
