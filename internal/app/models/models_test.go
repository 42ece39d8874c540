package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, SummaryStats{}, Summarize(nil, nil, nil))
}

func TestSummarizeTasksAndExams(t *testing.T) {
	tasks := []StudentTask{
		{Status: TaskStatusCompleted},
		{Status: TaskStatusCompleted},
		{Status: TaskStatusPending},
		{Status: TaskStatusNotCompleted},
	}
	exams := []StudentExam{{Score: 80}, {Score: 90}, {Score: 100}}
	attendance := make([]Attendance, 3)

	stats := Summarize(attendance, tasks, exams)

	assert.Equal(t, 3, stats.AttendanceCount)
	assert.Equal(t, 4, stats.TotalTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 50.0, stats.TaskCompletionRate)
	assert.Equal(t, 90.0, stats.AvgExamScore)
}

func TestSummarizeIsUnrounded(t *testing.T) {
	tasks := []StudentTask{{Status: TaskStatusCompleted}, {Status: TaskStatusPending}, {Status: TaskStatusPending}}
	exams := []StudentExam{{Score: 70}, {Score: 75}, {Score: 71}}

	stats := Summarize(nil, tasks, exams)

	assert.InDelta(t, 33.3333333, stats.TaskCompletionRate, 1e-6)
	assert.InDelta(t, 72.0, stats.AvgExamScore, 1e-9)
}

func TestCohortMatchingIsExact(t *testing.T) {
	first := Cohort{AcademicYear: "2024-2025", Grade: "الأول", ClassSection: "أ"}

	assert.True(t, first.Matches(first))
	assert.False(t, first.Matches(Cohort{AcademicYear: "2024-2025", Grade: "الثاني", ClassSection: "أ"}))
	assert.False(t, first.Matches(Cohort{AcademicYear: "2024-2025 ", Grade: "الأول", ClassSection: "أ"}))

	f := CohortFilter(first)
	assert.True(t, f.Accepts(Student{Cohort: first}))
	assert.False(t, f.Accepts(Student{Cohort: Cohort{AcademicYear: "2024-2025", Grade: "الأول", ClassSection: "ب"}}))
	assert.True(t, StudentFilter{}.Accepts(Student{}))
}

func TestTaskStatusValid(t *testing.T) {
	assert.True(t, TaskStatusPending.Valid())
	assert.True(t, TaskStatusNotCompleted.Valid())
	assert.False(t, TaskStatus("done").Valid())
}

func TestPresentPeriods(t *testing.T) {
	a := Attendance{Periods: [PeriodsPerDay]bool{true, false, true, true, false, false, true}}
	assert.Equal(t, 4, a.PresentPeriods())
}
