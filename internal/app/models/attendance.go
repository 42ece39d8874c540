package models

import (
	"time"

	"github.com/google/uuid"
)

// PeriodsPerDay is the number of class periods tracked per school day.
const PeriodsPerDay = 7

// Week defines a school week for one cohort ('weeks' table)
type Week struct {
	ID         uuid.UUID `json:"id" db:"id"`
	WeekNumber int       `json:"weekNumber" db:"week_number"`
	Cohort
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Attendance records one student's presence per period for one day of a week
type Attendance struct {
	ID        uuid.UUID           `json:"id" db:"id"`
	StudentID uuid.UUID           `json:"studentId" db:"student_id"`
	WeekID    uuid.UUID           `json:"weekId" db:"week_id"`
	DayOfWeek int                 `json:"dayOfWeek" db:"day_of_week"` // 0..6
	Periods   [PeriodsPerDay]bool `json:"periods"`                    // period_1 .. period_7
	CreatedAt time.Time           `json:"createdAt" db:"created_at"`
}

// PresentPeriods counts the periods marked present.
func (a Attendance) PresentPeriods() int {
	n := 0
	for _, p := range a.Periods {
		if p {
			n++
		}
	}
	return n
}
