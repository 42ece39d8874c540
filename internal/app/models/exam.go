package models

import (
	"time"

	"github.com/google/uuid"
)

// Exam defines an exam sat by one cohort ('exams' table)
type Exam struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ExamName        string    `json:"examName" db:"exam_name"`
	ExamDate        string    `json:"examDate" db:"exam_date" example:"2025-01-15"`
	DurationMinutes int       `json:"duration" db:"duration"`
	Cohort
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// StudentExam is one student's result for an exam ('student_exams' table)
type StudentExam struct {
	ID          uuid.UUID `json:"id" db:"id"`
	StudentID   uuid.UUID `json:"studentId" db:"student_id"`
	ExamID      uuid.UUID `json:"examId" db:"exam_id"`
	Score       float64   `json:"score" db:"score"`
	Passed      bool      `json:"passed" db:"passed"`
	GradeRating string    `json:"gradeRating" db:"grade_rating"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
