package dto

import (
	"time"

	"github.com/yigit/schoolportal/internal/app/models"
)

// CreateExamRequest schedules an exam for a cohort
type CreateExamRequest struct {
	ExamName     string `json:"examName" binding:"required"`
	ExamDate     string `json:"examDate" binding:"required" example:"2025-01-15"`
	Duration     int    `json:"duration" binding:"required,min=1" example:"90"`
	AcademicYear string `json:"academicYear" binding:"required"`
	Grade        string `json:"grade" binding:"required"`
	ClassSection string `json:"classSection" binding:"required"`
}

// ExamResponse is the public view of an exam
type ExamResponse struct {
	ID           string    `json:"id"`
	ExamName     string    `json:"examName"`
	ExamDate     string    `json:"examDate"`
	Duration     int       `json:"duration"`
	AcademicYear string    `json:"academicYear"`
	Grade        string    `json:"grade"`
	ClassSection string    `json:"classSection"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecordResultRequest records one student's score for an exam
type RecordResultRequest struct {
	StudentID   string   `json:"studentId" binding:"required,uuid"`
	Score       *float64 `json:"score" binding:"required"`
	Passed      bool     `json:"passed"`
	GradeRating string   `json:"gradeRating"`
}

// ExamResultResponse is the public view of a student's exam result
type ExamResultResponse struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	ExamID      string    `json:"examId"`
	Score       float64   `json:"score"`
	Passed      bool      `json:"passed"`
	GradeRating string    `json:"gradeRating,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewExamResponse maps an exam model
func NewExamResponse(e *models.Exam) ExamResponse {
	return ExamResponse{
		ID:           e.ID.String(),
		ExamName:     e.ExamName,
		ExamDate:     e.ExamDate,
		Duration:     e.DurationMinutes,
		AcademicYear: e.AcademicYear,
		Grade:        e.Grade,
		ClassSection: e.ClassSection,
		CreatedAt:    e.CreatedAt,
	}
}

// NewExamResultResponse maps a result model
func NewExamResultResponse(r *models.StudentExam) ExamResultResponse {
	return ExamResultResponse{
		ID:          r.ID.String(),
		StudentID:   r.StudentID.String(),
		ExamID:      r.ExamID.String(),
		Score:       r.Score,
		Passed:      r.Passed,
		GradeRating: r.GradeRating,
		CreatedAt:   r.CreatedAt,
	}
}

// NewExamResultResponses maps a slice of result models
func NewExamResultResponses(results []models.StudentExam) []ExamResultResponse {
	out := make([]ExamResultResponse, 0, len(results))
	for i := range results {
		out = append(out, NewExamResultResponse(&results[i]))
	}
	return out
}
