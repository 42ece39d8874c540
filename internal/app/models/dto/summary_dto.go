package dto

import (
	"fmt"
	"math"

	"github.com/yigit/schoolportal/internal/app/models"
)

// SummaryResponse is a student's academic summary with display-ready strings
type SummaryResponse struct {
	AttendanceCount           int     `json:"attendanceCount"`
	CompletedTasks            int     `json:"completedTasks"`
	TotalTasks                int     `json:"totalTasks"`
	TaskCompletionRate        float64 `json:"taskCompletionRate"`
	TaskCompletionRateDisplay string  `json:"taskCompletionRateDisplay" example:"50%"`
	AvgExamScore              float64 `json:"avgExamScore"`
	AvgExamScoreDisplay       string  `json:"avgExamScoreDisplay" example:"90.0"`
}

// NewSummaryResponse formats stats for display: the rate with no decimals, the score with one.
func NewSummaryResponse(s *models.SummaryStats) SummaryResponse {
	return SummaryResponse{
		AttendanceCount:           s.AttendanceCount,
		CompletedTasks:            s.CompletedTasks,
		TotalTasks:                s.TotalTasks,
		TaskCompletionRate:        s.TaskCompletionRate,
		TaskCompletionRateDisplay: fmt.Sprintf("%.0f%%", roundHalfUp(s.TaskCompletionRate, 0)),
		AvgExamScore:              s.AvgExamScore,
		AvgExamScoreDisplay:       fmt.Sprintf("%.1f", roundHalfUp(s.AvgExamScore, 1)),
	}
}

// roundHalfUp rounds to the given decimals with halves going away from zero.
// fmt alone rounds binary halves to even, so 12.5 would print as 12.
func roundHalfUp(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)
	return math.Round(v*scale) / scale
}
