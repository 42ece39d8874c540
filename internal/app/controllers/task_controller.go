package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
)

// TaskController handles task creation and listing
type TaskController struct {
	taskService services.TaskService
	logger      zerolog.Logger
}

// NewTaskController creates a new TaskController
func NewTaskController(taskService services.TaskService, logger zerolog.Logger) *TaskController {
	return &TaskController{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks godoc
// @Summary List tasks
// @Description All tasks, latest due date first
// @Tags tasks
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.TaskResponse}
// @Failure 503 {object} dto.APIResponse "Store temporarily unavailable"
// @Security BearerAuth
// @Router /tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	tasks, err := c.taskService.ListTasks(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTaskResponses(tasks)))
}

// CreateTask godoc
// @Summary Create a task for a cohort
// @Description Creates the task and assigns it, pending, to every student of the cohort in one transaction
// @Tags tasks
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Task data"
// @Success 201 {object} dto.APIResponse{data=dto.CreateTaskResponse}
// @Failure 400 {object} dto.APIResponse "Missing or malformed field"
// @Failure 500 {object} dto.APIResponse "Store failure or incomplete assignment"
// @Security BearerAuth
// @Router /tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.taskService.CreateTaskWithAssignments(ctx.Request.Context(), services.TaskInput{
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      req.DueDate,
		AcademicYear: req.AcademicYear,
		Grade:        req.Grade,
		ClassSection: req.ClassSection,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	assignments := make([]dto.StudentTaskResponse, 0, len(result.Assignments))
	for _, a := range result.Assignments {
		assignments = append(assignments, dto.NewStudentTaskResponse(a))
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.CreateTaskResponse{
		Task:          dto.NewTaskResponse(&result.Task),
		Assignments:   assignments,
		AssignedCount: result.AssignedCount,
	}))
}
