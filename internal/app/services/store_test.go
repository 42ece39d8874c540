package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/app/repositories/memory"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/retry"
)

var (
	firstA  = models.Cohort{AcademicYear: "2024-2025", Grade: "الأول", ClassSection: "أ"}
	secondA = models.Cohort{AcademicYear: "2024-2025", Grade: "الثاني", ClassSection: "أ"}

	testPolicy = retry.Policy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}
	nop        = zerolog.Nop()
)

var errConnReset = errors.New("connection reset by peer")

func transientErr(op string) error {
	return apperrors.NewPersistenceError(op, errConnReset, true)
}

func permanentErr(op string) error {
	return apperrors.NewPersistenceError(op, errors.New("relation does not exist"), false)
}

// faults configures which store calls misbehave
type faults struct {
	createBatchErr  error
	dropLastCreated bool
	listTasksFails  int32 // number of leading List calls that fail transiently
	listTasksCalls  atomic.Int32
	listResultsErr  error
}

// faultyStore wraps a real store and injects failures, including inside transactions
type faultyStore struct {
	repositories.Store
	f *faults
}

func (s *faultyStore) Tasks() repositories.TaskRepository {
	return &faultyTasks{TaskRepository: s.Store.Tasks(), f: s.f}
}

func (s *faultyStore) StudentTasks() repositories.StudentTaskRepository {
	return &faultyStudentTasks{StudentTaskRepository: s.Store.StudentTasks(), f: s.f}
}

func (s *faultyStore) Exams() repositories.ExamRepository {
	return &faultyExams{ExamRepository: s.Store.Exams(), f: s.f}
}

func (s *faultyStore) WithTx(ctx context.Context, fn repositories.TxFn) error {
	return s.Store.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		return fn(ctx, &faultyStore{Store: tx, f: s.f})
	})
}

type faultyTasks struct {
	repositories.TaskRepository
	f *faults
}

func (r *faultyTasks) List(ctx context.Context) ([]models.Task, error) {
	if r.f.listTasksCalls.Add(1) <= r.f.listTasksFails {
		return nil, transientErr("list tasks")
	}
	return r.TaskRepository.List(ctx)
}

type faultyStudentTasks struct {
	repositories.StudentTaskRepository
	f *faults
}

func (r *faultyStudentTasks) CreateBatch(ctx context.Context, drafts []models.StudentTask) ([]models.StudentTask, error) {
	if r.f.createBatchErr != nil {
		return nil, r.f.createBatchErr
	}
	created, err := r.StudentTaskRepository.CreateBatch(ctx, drafts)
	if err != nil || !r.f.dropLastCreated || len(created) == 0 {
		return created, err
	}
	return created[:len(created)-1], nil
}

type faultyExams struct {
	repositories.ExamRepository
	f *faults
}

func (r *faultyExams) ListResultsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentExam, error) {
	if r.f.listResultsErr != nil {
		return nil, r.f.listResultsErr
	}
	return r.ExamRepository.ListResultsByStudent(ctx, studentID)
}

func seedStudent(t *testing.T, store repositories.Store, name, nationalID string, c models.Cohort) models.Student {
	t.Helper()
	st := models.Student{FullName: name, NationalID: nationalID, Cohort: c}
	require.NoError(t, store.Students().Create(context.Background(), &st))
	return st
}

func newMemoryStore() *memory.Store {
	return memory.NewStore()
}
