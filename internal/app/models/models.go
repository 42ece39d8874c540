package models

// RoleType defines the session role type
type RoleType string

const (
	RoleTeacher RoleType = "TEACHER"
	RoleStudent RoleType = "STUDENT"
)

// Cohort identifies a group of students: academic year, grade and class section.
// Two cohorts match only when all three fields are byte-for-byte equal.
type Cohort struct {
	AcademicYear string `json:"academicYear" db:"academic_year" example:"2024-2025"`
	Grade        string `json:"grade" db:"grade" example:"الأول"`
	ClassSection string `json:"classSection" db:"class_section" example:"أ"`
}

// Matches reports whether c and other name the same cohort.
func (c Cohort) Matches(other Cohort) bool {
	return c.AcademicYear == other.AcademicYear &&
		c.Grade == other.Grade &&
		c.ClassSection == other.ClassSection
}
