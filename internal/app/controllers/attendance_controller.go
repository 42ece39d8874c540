package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
)

// AttendanceController handles weeks and attendance rows
type AttendanceController struct {
	attendanceService services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// CreateWeek godoc
// @Summary Open a school week
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CreateWeekRequest true "Week data"
// @Success 201 {object} dto.APIResponse{data=dto.WeekResponse}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /weeks [post]
func (c *AttendanceController) CreateWeek(ctx *gin.Context) {
	var req dto.CreateWeekRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	week, err := c.attendanceService.CreateWeek(ctx.Request.Context(), services.WeekInput{
		WeekNumber:   req.WeekNumber,
		AcademicYear: req.AcademicYear,
		Grade:        req.Grade,
		ClassSection: req.ClassSection,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewWeekResponse(week)))
}

// RecordAttendance godoc
// @Summary Record a day of attendance
// @Description Marks the seven periods of one day for one student
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.RecordAttendanceRequest true "Attendance data"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Student or week not found"
// @Failure 409 {object} dto.APIResponse "Day already recorded"
// @Security BearerAuth
// @Router /attendance [post]
func (c *AttendanceController) RecordAttendance(ctx *gin.Context) {
	var req dto.RecordAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	// both ids passed the uuid binding rule
	row, err := c.attendanceService.RecordAttendance(ctx.Request.Context(), services.AttendanceInput{
		StudentID: uuid.MustParse(req.StudentID),
		WeekID:    uuid.MustParse(req.WeekID),
		DayOfWeek: *req.DayOfWeek,
		Periods:   req.Periods,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewAttendanceResponse(row)))
}
