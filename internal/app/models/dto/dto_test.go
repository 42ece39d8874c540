package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/schoolportal/internal/app/models"
)

func TestNewSummaryResponseDisplayStrings(t *testing.T) {
	r := NewSummaryResponse(&models.SummaryStats{
		AttendanceCount:    3,
		CompletedTasks:     1,
		TotalTasks:         3,
		TaskCompletionRate: 100.0 / 3,
		AvgExamScore:       72.24,
	})

	assert.Equal(t, "33%", r.TaskCompletionRateDisplay)
	assert.Equal(t, "72.2", r.AvgExamScoreDisplay)
	assert.InDelta(t, 33.333, r.TaskCompletionRate, 0.001)
}

func TestNewSummaryResponseZero(t *testing.T) {
	r := NewSummaryResponse(&models.SummaryStats{})
	assert.Equal(t, "0%", r.TaskCompletionRateDisplay)
	assert.Equal(t, "0.0", r.AvgExamScoreDisplay)
}

func TestNewErrorResponse(t *testing.T) {
	r := NewErrorResponse(NewErrorDetail(ErrorCodeValidationFailed, "title is required").WithField("title"))
	assert.False(t, r.Success)
	assert.Equal(t, "title", r.Error.Field)
	assert.Equal(t, ErrorSeverityError, r.Error.Severity)
	assert.Nil(t, r.Data)
}

func TestNewSummaryResponseRoundsHalvesUp(t *testing.T) {
	r := NewSummaryResponse(&models.SummaryStats{TaskCompletionRate: 12.5, AvgExamScore: 80.25})
	assert.Equal(t, "13%", r.TaskCompletionRateDisplay)
	assert.Equal(t, "80.3", r.AvgExamScoreDisplay)

	r = NewSummaryResponse(&models.SummaryStats{TaskCompletionRate: 62.5, AvgExamScore: 87.5})
	assert.Equal(t, "63%", r.TaskCompletionRateDisplay)
	assert.Equal(t, "87.5", r.AvgExamScoreDisplay)
}
