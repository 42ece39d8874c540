package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

// MeController serves a signed-in student's own records
type MeController struct {
	services *services.Services
	logger   zerolog.Logger
}

// NewMeController creates a new MeController
func NewMeController(svc *services.Services, logger zerolog.Logger) *MeController {
	return &MeController{
		services: svc,
		logger:   logger,
	}
}

func currentStudentID(ctx *gin.Context) (uuid.UUID, bool) {
	p, ok := middleware.GetPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return uuid.Nil, false
	}
	return p.ID, true
}

// Profile godoc
// @Summary Current student profile
// @Tags me
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /me [get]
func (c *MeController) Profile(ctx *gin.Context) {
	id, ok := currentStudentID(ctx)
	if !ok {
		return
	}

	student, err := c.services.Students.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student)))
}

// Summary godoc
// @Summary Current student academic summary
// @Tags me
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SummaryResponse}
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /me/summary [get]
func (c *MeController) Summary(ctx *gin.Context) {
	id, ok := currentStudentID(ctx)
	if !ok {
		return
	}

	stats, err := c.services.Summary.ComputeStudentSummary(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSummaryResponse(stats)))
}

// Tasks godoc
// @Summary Current student's task assignments
// @Tags me
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentTaskResponse}
// @Security BearerAuth
// @Router /me/tasks [get]
func (c *MeController) Tasks(ctx *gin.Context) {
	id, ok := currentStudentID(ctx)
	if !ok {
		return
	}

	details, err := c.services.Tasks.ListStudentTasks(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentTaskDetailResponses(details)))
}

// Attendance godoc
// @Summary Current student's attendance
// @Tags me
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.AttendanceResponse}
// @Security BearerAuth
// @Router /me/attendance [get]
func (c *MeController) Attendance(ctx *gin.Context) {
	id, ok := currentStudentID(ctx)
	if !ok {
		return
	}

	rows, err := c.services.Attendance.ListStudentAttendance(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewAttendanceResponses(rows)))
}

// Exams godoc
// @Summary Current student's exam results
// @Tags me
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ExamResultResponse}
// @Security BearerAuth
// @Router /me/exams [get]
func (c *MeController) Exams(ctx *gin.Context) {
	id, ok := currentStudentID(ctx)
	if !ok {
		return
	}

	results, err := c.services.Exams.ListStudentResults(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewExamResultResponses(results)))
}
