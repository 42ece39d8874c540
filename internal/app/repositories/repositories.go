package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
)

// Store is the handle every service is given explicitly. Each accessor returns a
// repository bound to the same connection or transaction as the store itself.
//
// Lookups that find nothing return the matching apperrors not-found sentinel.
// All other store failures come back as apperrors persistence errors.
type Store interface {
	Students() StudentRepository
	Tasks() TaskRepository
	StudentTasks() StudentTaskRepository
	Weeks() WeekRepository
	Attendance() AttendanceRepository
	Exams() ExamRepository
	Teachers() TeacherRepository

	// WithTx runs fn against a transactional view of the store. If fn returns an
	// error or panics, none of its writes are visible afterwards. Calling WithTx
	// on a store that is already transactional joins the outer transaction.
	WithTx(ctx context.Context, fn TxFn) error
}

// TxFn is a function that executes within a transaction
type TxFn func(ctx context.Context, tx Store) error

// StudentRepository handles student persistence
type StudentRepository interface {
	// Create inserts s and fills in its ID and CreatedAt.
	Create(ctx context.Context, s *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetByNationalID(ctx context.Context, nationalID string) (*models.Student, error)
	// List returns students accepted by f ordered by full name.
	List(ctx context.Context, f models.StudentFilter) ([]models.Student, error)
	Count(ctx context.Context, f models.StudentFilter) (int64, error)
}

// TaskRepository handles task persistence
type TaskRepository interface {
	Create(ctx context.Context, t *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	// List returns all tasks, latest due date first.
	List(ctx context.Context) ([]models.Task, error)
}

// StudentTaskRepository handles per-student task assignments
type StudentTaskRepository interface {
	// CreateBatch inserts all drafts in one statement and returns the stored rows.
	CreateBatch(ctx context.Context, drafts []models.StudentTask) ([]models.StudentTask, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentTask, error)
	ListDetailsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentTaskDetail, error)
}

// WeekRepository handles school weeks
type WeekRepository interface {
	Create(ctx context.Context, w *models.Week) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Week, error)
}

// AttendanceRepository handles daily attendance rows
type AttendanceRepository interface {
	Create(ctx context.Context, a *models.Attendance) error
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Attendance, error)
}

// ExamRepository handles exams and their per-student results
type ExamRepository interface {
	Create(ctx context.Context, e *models.Exam) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Exam, error)
	CreateResult(ctx context.Context, r *models.StudentExam) error
	ListResultsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.StudentExam, error)
}

// TeacherRepository handles teacher accounts
type TeacherRepository interface {
	Create(ctx context.Context, t *models.Teacher) error
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
}
