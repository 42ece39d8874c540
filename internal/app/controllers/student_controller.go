package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appauth "github.com/yigit/schoolportal/internal/app/auth"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/helpers"
)

// StudentController handles student records and summaries
type StudentController struct {
	studentService services.StudentService
	summaryService services.SummaryService
	authz          *appauth.AuthorizationService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	summaryService services.SummaryService,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService: studentService,
		summaryService: summaryService,
		authz:          authz,
		logger:         logger,
	}
}

// ListStudents godoc
// @Summary List students
// @Description Lists students ordered by name, optionally narrowed to a cohort
// @Tags students
// @Produce json
// @Param academicYear query string false "Academic year"
// @Param grade query string false "Grade"
// @Param classSection query string false "Class section"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 401 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Security BearerAuth
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := models.StudentFilter{
		AcademicYear: optionalQuery(ctx, "academicYear"),
		Grade:        optionalQuery(ctx, "grade"),
		ClassSection: optionalQuery(ctx, "classSection"),
	}

	resp, err := c.studentService.ListStudents(ctx.Request.Context(), filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// CreateStudent godoc
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student data"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "National ID already registered"
// @Security BearerAuth
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.CreateStudent(ctx.Request.Context(), services.StudentInput{
		FullName:      req.FullName,
		NationalID:    req.NationalID,
		AcademicYear:  req.AcademicYear,
		Grade:         req.Grade,
		ClassSection:  req.ClassSection,
		GuardianPhone: req.GuardianPhone,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("studentID", student.ID.String()).Msg("Student registered")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewStudentResponse(student)))
}

// GetStudent godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Security BearerAuth
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentResponse(student)))
}

// GetSummary godoc
// @Summary Student academic summary
// @Description Attendance count, task completion and average exam score. Students may only read their own.
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SummaryResponse}
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Failure 503 {object} dto.APIResponse "Store temporarily unavailable"
// @Security BearerAuth
// @Router /students/{id}/summary [get]
func (c *StudentController) GetSummary(ctx *gin.Context) {
	id, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrTokenInvalid)
		return
	}
	if err := c.authz.CanViewStudent(principal, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	stats, err := c.summaryService.ComputeStudentSummary(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewSummaryResponse(stats)))
}
