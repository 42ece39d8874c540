package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"go.uber.org/goleak"
)

// seedHistory gives st three attendance days, tasks [c,c,p,nc] and scores [80,90,100].
func seedHistory(t *testing.T, store repositories.Store, st models.Student) {
	t.Helper()
	ctx := context.Background()

	week := models.Week{WeekNumber: 1, Cohort: st.Cohort}
	require.NoError(t, store.Weeks().Create(ctx, &week))
	for day := 0; day < 3; day++ {
		require.NoError(t, store.Attendance().Create(ctx, &models.Attendance{StudentID: st.ID, WeekID: week.ID, DayOfWeek: day}))
	}

	var drafts []models.StudentTask
	for _, status := range []models.TaskStatus{
		models.TaskStatusCompleted, models.TaskStatusCompleted, models.TaskStatusPending, models.TaskStatusNotCompleted,
	} {
		task := models.Task{Title: "t", Description: "d", DueDate: "2025-01-01", Cohort: st.Cohort}
		require.NoError(t, store.Tasks().Create(ctx, &task))
		drafts = append(drafts, models.StudentTask{StudentID: st.ID, TaskID: task.ID, Status: status})
	}
	_, err := store.StudentTasks().CreateBatch(ctx, drafts)
	require.NoError(t, err)

	for _, score := range []float64{80, 90, 100} {
		exam := models.Exam{ExamName: "e", ExamDate: "2025-01-15", DurationMinutes: 60, Cohort: st.Cohort}
		require.NoError(t, store.Exams().Create(ctx, &exam))
		require.NoError(t, store.Exams().CreateResult(ctx, &models.StudentExam{StudentID: st.ID, ExamID: exam.ID, Score: score}))
	}
}

func TestComputeSummaryForUnknownStudentIsZero(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewSummaryService(newMemoryStore(), testPolicy, nop)
	stats, err := svc.ComputeStudentSummary(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, models.SummaryStats{}, *stats)
}

func TestComputeSummaryFoldsAllSources(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := newMemoryStore()
	st := seedStudent(t, store, "Adam", "1", firstA)
	seedHistory(t, store, st)
	svc := NewSummaryService(store, testPolicy, nop)

	stats, err := svc.ComputeStudentSummary(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.AttendanceCount)
	assert.Equal(t, 4, stats.TotalTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 50.0, stats.TaskCompletionRate)
	assert.Equal(t, 90.0, stats.AvgExamScore)

	again, err := svc.ComputeStudentSummary(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, *stats, *again)
}

func TestComputeSummaryFailsWholeOnAnyReadError(t *testing.T) {
	defer goleak.VerifyNone(t)

	base := newMemoryStore()
	st := seedStudent(t, base, "Adam", "1", firstA)
	seedHistory(t, base, st)
	store := &faultyStore{Store: base, f: &faults{listResultsErr: permanentErr("list exam results")}}
	svc := NewSummaryService(store, testPolicy, nop)

	stats, err := svc.ComputeStudentSummary(context.Background(), st.ID)
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
}

func TestComputeSummaryRespectsCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc := NewSummaryService(newMemoryStore(), testPolicy, nop)

	stats, err := svc.ComputeStudentSummary(ctx, uuid.New())
	assert.Nil(t, stats)
	assert.ErrorIs(t, err, context.Canceled)
}
