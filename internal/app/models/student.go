package models

import (
	"time"

	"github.com/google/uuid"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID            uuid.UUID `json:"id" db:"id"`
	FullName      string    `json:"fullName" db:"full_name" example:"أحمد محمد"`
	NationalID    string    `json:"nationalId" db:"national_id" example:"29901011234567"` // Unique, doubles as the student login credential
	Cohort
	GuardianPhone string    `json:"guardianPhone" db:"guardian_phone" example:"01000000000"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// StudentFilter narrows a student listing. Nil fields are not filtered on.
type StudentFilter struct {
	AcademicYear *string
	Grade        *string
	ClassSection *string
	Limit        int
	Offset       int
}

// CohortFilter builds a filter that matches exactly the given cohort.
func CohortFilter(c Cohort) StudentFilter {
	return StudentFilter{
		AcademicYear: &c.AcademicYear,
		Grade:        &c.Grade,
		ClassSection: &c.ClassSection,
	}
}

// Accepts reports whether s passes the filter's equality conditions.
func (f StudentFilter) Accepts(s Student) bool {
	if f.AcademicYear != nil && *f.AcademicYear != s.AcademicYear {
		return false
	}
	if f.Grade != nil && *f.Grade != s.Grade {
		return false
	}
	if f.ClassSection != nil && *f.ClassSection != s.ClassSection {
		return false
	}
	return true
}
