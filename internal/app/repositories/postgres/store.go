// Package postgres implements the repository contracts on PostgreSQL via pgx.
package postgres

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/db"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/dberrors"
	"github.com/yigit/schoolportal/internal/pkg/logger"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the PostgreSQL-backed repositories.Store
type Store struct {
	db   *db.PostgresDB
	q    querier
	inTx bool
	log  zerolog.Logger
}

var _ repositories.Store = (*Store)(nil)

// NewStore creates a store on top of an open connection pool
func NewStore(pg *db.PostgresDB) *Store {
	return &Store{
		db:  pg,
		q:   pg.Pool,
		log: logger.Component("postgres"),
	}
}

func (s *Store) base() base {
	return base{
		q:   s.q,
		sb:  squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log: s.log,
	}
}

func (s *Store) Students() repositories.StudentRepository { return &studentRepository{s.base()} }
func (s *Store) Tasks() repositories.TaskRepository { return &taskRepository{s.base()} }
func (s *Store) StudentTasks() repositories.StudentTaskRepository { return &studentTaskRepository{s.base()} }
func (s *Store) Weeks() repositories.WeekRepository { return &weekRepository{s.base()} }
func (s *Store) Attendance() repositories.AttendanceRepository { return &attendanceRepository{s.base()} }
func (s *Store) Exams() repositories.ExamRepository { return &examRepository{s.base()} }
func (s *Store) Teachers() repositories.TeacherRepository { return &teacherRepository{s.base()} }

// WithTx runs fn inside a database transaction
func (s *Store) WithTx(ctx context.Context, fn repositories.TxFn) error {
	if s.inTx {
		return fn(ctx, s)
	}

	var fnErr error
	err := s.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		fnErr = fn(ctx, &Store{db: s.db, q: tx, inTx: true, log: s.log})
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		return fnErr
	}
	return storeError("transaction", err)
}

// base carries what every table repository needs
type base struct {
	q   querier
	sb  squirrel.StatementBuilderType
	log zerolog.Logger
}

// storeError wraps a driver failure into a persistence error
func storeError(op string, err error) error {
	return apperrors.NewPersistenceError(op, err, dberrors.IsTransient(err))
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
