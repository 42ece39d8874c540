package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

func weekInput(n int, c models.Cohort) WeekInput {
	return WeekInput{WeekNumber: n, AcademicYear: c.AcademicYear, Grade: c.Grade, ClassSection: c.ClassSection}
}

func TestRecordAttendance(t *testing.T) {
	store := newMemoryStore()
	st := seedStudent(t, store, "Adam", "1", firstA)
	svc := NewAttendanceService(store, testPolicy, nop)
	ctx := context.Background()

	week, err := svc.CreateWeek(ctx, weekInput(1, firstA))
	require.NoError(t, err)

	row, err := svc.RecordAttendance(ctx, AttendanceInput{
		StudentID: st.ID,
		WeekID:    week.ID,
		DayOfWeek: 6,
		Periods:   [models.PeriodsPerDay]bool{true, true, false, true, true, true, true},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, row.PresentPeriods())

	_, err = svc.RecordAttendance(ctx, AttendanceInput{StudentID: st.ID, WeekID: week.ID, DayOfWeek: 6})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	rows, err := svc.ListStudentAttendance(ctx, st.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRecordAttendanceRejections(t *testing.T) {
	store := newMemoryStore()
	st := seedStudent(t, store, "Adam", "1", firstA)
	svc := NewAttendanceService(store, testPolicy, nop)
	ctx := context.Background()
	week, err := svc.CreateWeek(ctx, weekInput(1, firstA))
	require.NoError(t, err)
	otherWeek, err := svc.CreateWeek(ctx, weekInput(1, secondA))
	require.NoError(t, err)

	_, err = svc.RecordAttendance(ctx, AttendanceInput{StudentID: st.ID, WeekID: week.ID, DayOfWeek: 7})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.RecordAttendance(ctx, AttendanceInput{StudentID: st.ID, WeekID: uuid.New(), DayOfWeek: 1})
	assert.ErrorIs(t, err, apperrors.ErrWeekNotFound)

	_, err = svc.RecordAttendance(ctx, AttendanceInput{StudentID: uuid.New(), WeekID: week.ID, DayOfWeek: 1})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.RecordAttendance(ctx, AttendanceInput{StudentID: st.ID, WeekID: otherWeek.ID, DayOfWeek: 1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.CreateWeek(ctx, weekInput(0, firstA))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func examInput(c models.Cohort) ExamInput {
	return ExamInput{
		ExamName:        "Math midterm",
		ExamDate:        "2025-01-15",
		DurationMinutes: 90,
		AcademicYear:    c.AcademicYear,
		Grade:           c.Grade,
		ClassSection:    c.ClassSection,
	}
}

func TestRecordExamResults(t *testing.T) {
	store := newMemoryStore()
	st := seedStudent(t, store, "Adam", "1", firstA)
	svc := NewExamService(store, testPolicy, nop)
	ctx := context.Background()

	exam, err := svc.CreateExam(ctx, examInput(firstA))
	require.NoError(t, err)

	res, err := svc.RecordResult(ctx, ResultInput{StudentID: st.ID, ExamID: exam.ID, Score: 87.5, Passed: true, GradeRating: "جيد جدا"})
	require.NoError(t, err)
	assert.Equal(t, 87.5, res.Score)

	results, err := svc.ListStudentResults(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, exam.ID, results[0].ExamID)
}

func TestRecordExamResultRejections(t *testing.T) {
	store := newMemoryStore()
	st := seedStudent(t, store, "Adam", "1", firstA)
	svc := NewExamService(store, testPolicy, nop)
	ctx := context.Background()
	exam, err := svc.CreateExam(ctx, examInput(firstA))
	require.NoError(t, err)
	otherExam, err := svc.CreateExam(ctx, examInput(secondA))
	require.NoError(t, err)

	_, err = svc.RecordResult(ctx, ResultInput{StudentID: st.ID, ExamID: exam.ID, Score: 100.5})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.RecordResult(ctx, ResultInput{StudentID: st.ID, ExamID: exam.ID, Score: -1})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.RecordResult(ctx, ResultInput{StudentID: st.ID, ExamID: uuid.New(), Score: 50})
	assert.ErrorIs(t, err, apperrors.ErrExamNotFound)

	_, err = svc.RecordResult(ctx, ResultInput{StudentID: st.ID, ExamID: otherExam.ID, Score: 50})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	bad := examInput(firstA)
	bad.ExamDate = "15-01-2025"
	_, err = svc.CreateExam(ctx, bad)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
