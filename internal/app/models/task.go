package models

import (
	"time"

	"github.com/google/uuid"
)

// DueDateLayout is the calendar-date format tasks store their due date in.
const DueDateLayout = "2006-01-02"

// TaskStatus is the lifecycle state of a per-student assignment
type TaskStatus string

const (
	TaskStatusPending      TaskStatus = "pending"
	TaskStatusCompleted    TaskStatus = "completed"
	TaskStatusNotCompleted TaskStatus = "not_completed"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusCompleted, TaskStatusNotCompleted:
		return true
	}
	return false
}

// Task defines the task model based on the 'tasks' table
type Task struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     string    `json:"dueDate" db:"due_date" example:"2025-03-01"`
	Cohort
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// StudentTask is one student's assignment of a task ('student_tasks' table)
type StudentTask struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	StudentID uuid.UUID  `json:"studentId" db:"student_id"`
	TaskID    uuid.UUID  `json:"taskId" db:"task_id"`
	Status    TaskStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// StudentTaskDetail is a StudentTask joined with its parent task.
type StudentTaskDetail struct {
	StudentTask
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}
