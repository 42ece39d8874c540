package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

var cohortA = models.Cohort{AcademicYear: "2024-2025", Grade: "الأول", ClassSection: "أ"}

func addStudent(t *testing.T, s *Store, name, nationalID string, c models.Cohort) models.Student {
	t.Helper()
	st := models.Student{FullName: name, NationalID: nationalID, Cohort: c}
	require.NoError(t, s.Students().Create(context.Background(), &st))
	return st
}

func TestStudentCreateAssignsIDAndRejectsDuplicateNationalID(t *testing.T) {
	s := NewStore()
	st := addStudent(t, s, "Omar", "1001", cohortA)
	assert.NotEqual(t, uuid.Nil, st.ID)
	assert.False(t, st.CreatedAt.IsZero())

	dup := models.Student{FullName: "Other", NationalID: "1001", Cohort: cohortA}
	err := s.Students().Create(context.Background(), &dup)
	assert.ErrorIs(t, err, apperrors.ErrNationalIDExists)

	got, err := s.Students().GetByNationalID(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)

	_, err = s.Students().GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestStudentListFiltersOrdersAndPages(t *testing.T) {
	s := NewStore()
	other := models.Cohort{AcademicYear: "2024-2025", Grade: "الأول", ClassSection: "ب"}
	addStudent(t, s, "Zeina", "1", cohortA)
	addStudent(t, s, "Adam", "2", cohortA)
	addStudent(t, s, "Mariam", "3", cohortA)
	addStudent(t, s, "Basma", "4", other)

	ctx := context.Background()
	list, err := s.Students().List(ctx, models.CohortFilter(cohortA))
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Adam", "Mariam", "Zeina"}, []string{list[0].FullName, list[1].FullName, list[2].FullName})

	f := models.CohortFilter(cohortA)
	f.Offset, f.Limit = 1, 1
	page, err := s.Students().List(ctx, f)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Mariam", page[0].FullName)

	f.Offset = 10
	page, err = s.Students().List(ctx, f)
	require.NoError(t, err)
	assert.Empty(t, page)

	n, err := s.Students().Count(ctx, models.StudentFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestTaskListOrderedByDueDateDesc(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for _, due := range []string{"2025-01-10", "2025-03-01", "2025-02-15"} {
		task := models.Task{Title: due, DueDate: due, Cohort: cohortA}
		require.NoError(t, s.Tasks().Create(ctx, &task))
	}

	tasks, err := s.Tasks().List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "2025-03-01", tasks[0].DueDate)
	assert.Equal(t, "2025-02-15", tasks[1].DueDate)
	assert.Equal(t, "2025-01-10", tasks[2].DueDate)
}

func TestCreateBatchRejectsMissingStudentAtomically(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	st := addStudent(t, s, "Omar", "1", cohortA)
	task := models.Task{Title: "Essay", DueDate: "2025-03-01", Cohort: cohortA}
	require.NoError(t, s.Tasks().Create(ctx, &task))

	_, err := s.StudentTasks().CreateBatch(ctx, []models.StudentTask{
		{StudentID: st.ID, TaskID: task.ID, Status: models.TaskStatusPending},
		{StudentID: uuid.New(), TaskID: task.ID, Status: models.TaskStatusPending},
	})
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, err, errForeignKey)

	rows, err := s.StudentTasks().ListByStudent(ctx, st.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWithTxCommitsOnSuccess(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		task := models.Task{Title: "Essay", DueDate: "2025-03-01", Cohort: cohortA}
		return tx.Tasks().Create(ctx, &task)
	})
	require.NoError(t, err)

	tasks, err := s.Tasks().List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		task := models.Task{Title: "Essay", DueDate: "2025-03-01", Cohort: cohortA}
		if err := tx.Tasks().Create(ctx, &task); err != nil {
			return err
		}
		// the write is visible inside the transaction
		inside, err := tx.Tasks().List(ctx)
		require.NoError(t, err)
		assert.Len(t, inside, 1)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	tasks, err := s.Tasks().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = s.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
			task := models.Task{Title: "Essay", DueDate: "2025-03-01", Cohort: cohortA}
			_ = tx.Tasks().Create(ctx, &task)
			panic("bug")
		})
	})

	tasks, err := s.Tasks().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestWithTxNestedJoinsOuter(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.WithTx(ctx, func(ctx context.Context, tx repositories.Store) error {
		return tx.WithTx(ctx, func(ctx context.Context, inner repositories.Store) error {
			w := models.Week{WeekNumber: 1, Cohort: cohortA}
			return inner.Weeks().Create(ctx, &w)
		})
	})
	require.NoError(t, err)
	assert.Len(t, s.db.data.weeks, 1)
}

func TestCancelledContextFailsAsPersistence(t *testing.T) {
	s := NewStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Tasks().List(ctx)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperrors.IsTransient(err))
}

func TestAttendanceAndExamConstraints(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	st := addStudent(t, s, "Omar", "1", cohortA)
	week2 := models.Week{WeekNumber: 2, Cohort: cohortA}
	week1 := models.Week{WeekNumber: 1, Cohort: cohortA}
	require.NoError(t, s.Weeks().Create(ctx, &week2))
	require.NoError(t, s.Weeks().Create(ctx, &week1))

	require.NoError(t, s.Attendance().Create(ctx, &models.Attendance{StudentID: st.ID, WeekID: week2.ID, DayOfWeek: 0}))
	require.NoError(t, s.Attendance().Create(ctx, &models.Attendance{StudentID: st.ID, WeekID: week1.ID, DayOfWeek: 3}))
	err := s.Attendance().Create(ctx, &models.Attendance{StudentID: st.ID, WeekID: week1.ID, DayOfWeek: 3})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	rows, err := s.Attendance().ListByStudent(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, week1.ID, rows[0].WeekID)

	exam := models.Exam{ExamName: "Math", ExamDate: "2025-01-15", DurationMinutes: 60, Cohort: cohortA}
	require.NoError(t, s.Exams().Create(ctx, &exam))
	require.NoError(t, s.Exams().CreateResult(ctx, &models.StudentExam{StudentID: st.ID, ExamID: exam.ID, Score: 88}))
	err = s.Exams().CreateResult(ctx, &models.StudentExam{StudentID: st.ID, ExamID: exam.ID, Score: 90})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	results, err := s.Exams().ListResultsByStudent(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 88.0, results[0].Score)
}

func TestTeacherEmailUnique(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Teachers().Create(ctx, &models.Teacher{Email: "t@school.eg", FullName: "T"}))
	err := s.Teachers().Create(ctx, &models.Teacher{Email: "t@school.eg", FullName: "T2"})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)

	_, err = s.Teachers().GetByEmail(ctx, "missing@school.eg")
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}
