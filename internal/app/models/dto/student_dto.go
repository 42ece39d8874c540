package dto

import (
	"time"

	"github.com/yigit/schoolportal/internal/app/models"
)

// CreateStudentRequest is the payload for registering a student
type CreateStudentRequest struct {
	FullName      string `json:"fullName" binding:"required"`
	NationalID    string `json:"nationalId" binding:"required"`
	AcademicYear  string `json:"academicYear" binding:"required"`
	Grade         string `json:"grade" binding:"required"`
	ClassSection  string `json:"classSection" binding:"required"`
	GuardianPhone string `json:"guardianPhone"`
}

// StudentResponse is the public view of a student
type StudentResponse struct {
	ID            string    `json:"id"`
	FullName      string    `json:"fullName"`
	NationalID    string    `json:"nationalId"`
	AcademicYear  string    `json:"academicYear"`
	Grade         string    `json:"grade"`
	ClassSection  string    `json:"classSection"`
	GuardianPhone string    `json:"guardianPhone,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StudentListResponse is one page of students
type StudentListResponse struct {
	Students       []StudentResponse `json:"students"`
	PaginationInfo PaginationInfo    `json:"paginationInfo"`
}

// NewStudentResponse maps a student model
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:            s.ID.String(),
		FullName:      s.FullName,
		NationalID:    s.NationalID,
		AcademicYear:  s.AcademicYear,
		Grade:         s.Grade,
		ClassSection:  s.ClassSection,
		GuardianPhone: s.GuardianPhone,
		CreatedAt:     s.CreatedAt,
	}
}

// NewStudentResponses maps a slice of student models
func NewStudentResponses(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for i := range students {
		out = append(out, NewStudentResponse(&students[i]))
	}
	return out
}
