package dto

import (
	"time"

	"github.com/yigit/schoolportal/internal/app/models"
)

// CreateTaskRequest is the payload for creating a task for a cohort
type CreateTaskRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	DueDate      string `json:"dueDate" example:"2025-03-01"`
	AcademicYear string `json:"academicYear" example:"2024-2025"`
	Grade        string `json:"grade" example:"الأول"`
	ClassSection string `json:"classSection" example:"أ"`
}

// TaskResponse is the public view of a task
type TaskResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	DueDate      string    `json:"dueDate"`
	AcademicYear string    `json:"academicYear"`
	Grade        string    `json:"grade"`
	ClassSection string    `json:"classSection"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StudentTaskResponse is one assignment, optionally joined with its task
type StudentTaskResponse struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"studentId"`
	TaskID      string            `json:"taskId"`
	Status      models.TaskStatus `json:"status" enums:"pending,completed,not_completed"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
	DueDate     string            `json:"dueDate,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// CreateTaskResponse reports the created task and its fan-out
type CreateTaskResponse struct {
	Task          TaskResponse          `json:"task"`
	Assignments   []StudentTaskResponse `json:"assignments"`
	AssignedCount int                   `json:"assignedCount"`
}

// NewTaskResponse maps a task model
func NewTaskResponse(t *models.Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Description:  t.Description,
		DueDate:      t.DueDate,
		AcademicYear: t.AcademicYear,
		Grade:        t.Grade,
		ClassSection: t.ClassSection,
		CreatedAt:    t.CreatedAt,
	}
}

// NewTaskResponses maps a slice of task models
func NewTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}

// NewStudentTaskResponse maps an assignment without task details
func NewStudentTaskResponse(st models.StudentTask) StudentTaskResponse {
	return StudentTaskResponse{
		ID:        st.ID.String(),
		StudentID: st.StudentID.String(),
		TaskID:    st.TaskID.String(),
		Status:    st.Status,
		CreatedAt: st.CreatedAt,
	}
}

// NewStudentTaskDetailResponses maps joined assignments
func NewStudentTaskDetailResponses(details []models.StudentTaskDetail) []StudentTaskResponse {
	out := make([]StudentTaskResponse, 0, len(details))
	for _, d := range details {
		r := NewStudentTaskResponse(d.StudentTask)
		r.Title = d.Title
		r.Description = d.Description
		r.DueDate = d.DueDate
		out = append(out, r)
	}
	return out
}
