package dto

import (
	"time"

	"github.com/yigit/schoolportal/internal/app/models"
)

// CreateWeekRequest opens a school week for a cohort
type CreateWeekRequest struct {
	WeekNumber   int    `json:"weekNumber" binding:"required,min=1"`
	AcademicYear string `json:"academicYear" binding:"required"`
	Grade        string `json:"grade" binding:"required"`
	ClassSection string `json:"classSection" binding:"required"`
}

// WeekResponse is the public view of a week
type WeekResponse struct {
	ID           string    `json:"id"`
	WeekNumber   int       `json:"weekNumber"`
	AcademicYear string    `json:"academicYear"`
	Grade        string    `json:"grade"`
	ClassSection string    `json:"classSection"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RecordAttendanceRequest marks one student's periods for one day.
// DayOfWeek is a pointer so that day 0 is distinguishable from a missing field.
type RecordAttendanceRequest struct {
	StudentID string                     `json:"studentId" binding:"required,uuid"`
	WeekID    string                     `json:"weekId" binding:"required,uuid"`
	DayOfWeek *int                       `json:"dayOfWeek" binding:"required"`
	Periods   [models.PeriodsPerDay]bool `json:"periods"`
}

// AttendanceResponse is the public view of an attendance row
type AttendanceResponse struct {
	ID             string                     `json:"id"`
	StudentID      string                     `json:"studentId"`
	WeekID         string                     `json:"weekId"`
	DayOfWeek      int                        `json:"dayOfWeek"`
	Periods        [models.PeriodsPerDay]bool `json:"periods"`
	PresentPeriods int                        `json:"presentPeriods"`
	CreatedAt      time.Time                  `json:"createdAt"`
}

// NewWeekResponse maps a week model
func NewWeekResponse(w *models.Week) WeekResponse {
	return WeekResponse{
		ID:           w.ID.String(),
		WeekNumber:   w.WeekNumber,
		AcademicYear: w.AcademicYear,
		Grade:        w.Grade,
		ClassSection: w.ClassSection,
		CreatedAt:    w.CreatedAt,
	}
}

// NewAttendanceResponse maps an attendance model
func NewAttendanceResponse(a *models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID.String(),
		StudentID:      a.StudentID.String(),
		WeekID:         a.WeekID.String(),
		DayOfWeek:      a.DayOfWeek,
		Periods:        a.Periods,
		PresentPeriods: a.PresentPeriods(),
		CreatedAt:      a.CreatedAt,
	}
}

// NewAttendanceResponses maps a slice of attendance models
func NewAttendanceResponses(rows []models.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewAttendanceResponse(&rows[i]))
	}
	return out
}
