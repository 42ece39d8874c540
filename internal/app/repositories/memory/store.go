// Package memory is an in-process repositories.Store used for development
// and tests. Tables are guarded by a single RWMutex; transactions work on a
// private copy of every table that replaces the live data on commit.
package memory

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

var errForeignKey = errors.New("foreign key violation")

type tables struct {
	students     []models.Student
	tasks        []models.Task
	studentTasks []models.StudentTask
	weeks        []models.Week
	attendance   []models.Attendance
	exams        []models.Exam
	studentExams []models.StudentExam
	teachers     []models.Teacher
}

func (t *tables) clone() *tables {
	return &tables{
		students:     slices.Clone(t.students),
		tasks:        slices.Clone(t.tasks),
		studentTasks: slices.Clone(t.studentTasks),
		weeks:        slices.Clone(t.weeks),
		attendance:   slices.Clone(t.attendance),
		exams:        slices.Clone(t.exams),
		studentExams: slices.Clone(t.studentExams),
		teachers:     slices.Clone(t.teachers),
	}
}

type database struct {
	mutex sync.RWMutex
	data  *tables
	now   func() time.Time
}

// Store is the in-memory repositories.Store
type Store struct {
	db *database
	tx *tables // set inside WithTx; the lock is already held
}

var _ repositories.Store = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{db: &database{data: &tables{}, now: time.Now}}
}

func (s *Store) Students() repositories.StudentRepository { return &studentRepository{s} }
func (s *Store) Tasks() repositories.TaskRepository { return &taskRepository{s} }
func (s *Store) StudentTasks() repositories.StudentTaskRepository { return &studentTaskRepository{s} }
func (s *Store) Weeks() repositories.WeekRepository { return &weekRepository{s} }
func (s *Store) Attendance() repositories.AttendanceRepository { return &attendanceRepository{s} }
func (s *Store) Exams() repositories.ExamRepository { return &examRepository{s} }
func (s *Store) Teachers() repositories.TeacherRepository { return &teacherRepository{s} }

// WithTx runs fn against a snapshot of every table. The snapshot replaces the
// live tables only if fn returns nil and ctx is still live.
func (s *Store) WithTx(ctx context.Context, fn repositories.TxFn) error {
	if s.tx != nil {
		return fn(ctx, s)
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("begin transaction", err, false)
	}

	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()

	snapshot := s.db.data.clone()
	if err := fn(ctx, &Store{db: s.db, tx: snapshot}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("commit transaction", err, false)
	}

	s.db.data = snapshot
	return nil
}

// read runs fn with a shared lock on the live tables, or directly on the
// transaction snapshot.
func (s *Store) read(ctx context.Context, op string, fn func(t *tables) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError(op, err, false)
	}
	if s.tx != nil {
		return fn(s.tx)
	}
	s.db.mutex.RLock()
	defer s.db.mutex.RUnlock()
	return fn(s.db.data)
}

func (s *Store) write(ctx context.Context, op string, fn func(t *tables) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError(op, err, false)
	}
	if s.tx != nil {
		return fn(s.tx)
	}
	s.db.mutex.Lock()
	defer s.db.mutex.Unlock()
	return fn(s.db.data)
}

func (s *Store) now() time.Time {
	return s.db.now()
}

func foreignKeyError(op, detail string) error {
	return apperrors.NewPersistenceError(op, errors.Join(errForeignKey, errors.New(detail)), false)
}
