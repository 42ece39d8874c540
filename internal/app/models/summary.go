package models

// SummaryStats is the derived academic summary of one student.
// Values are unrounded; rounding is left to presentation.
type SummaryStats struct {
	AttendanceCount    int     `json:"attendanceCount"`
	CompletedTasks     int     `json:"completedTasks"`
	TotalTasks         int     `json:"totalTasks"`
	TaskCompletionRate float64 `json:"taskCompletionRate"` // percentage in [0,100]
	AvgExamScore       float64 `json:"avgExamScore"`
}

// Summarize folds a student's source rows into SummaryStats.
// Empty inputs yield the zero summary.
func Summarize(attendance []Attendance, tasks []StudentTask, exams []StudentExam) SummaryStats {
	stats := SummaryStats{
		AttendanceCount: len(attendance),
		TotalTasks:      len(tasks),
	}

	for _, t := range tasks {
		if t.Status == TaskStatusCompleted {
			stats.CompletedTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.TaskCompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
	}

	if len(exams) > 0 {
		var sum float64
		for _, e := range exams {
			sum += e.Score
		}
		stats.AvgExamScore = sum / float64(len(exams))
	}

	return stats
}
