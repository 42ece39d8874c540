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

// ExamController handles exams and exam results
type ExamController struct {
	examService services.ExamService
	logger      zerolog.Logger
}

// NewExamController creates a new ExamController
func NewExamController(examService services.ExamService, logger zerolog.Logger) *ExamController {
	return &ExamController{
		examService: examService,
		logger:      logger,
	}
}

// CreateExam godoc
// @Summary Schedule an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.CreateExamRequest true "Exam data"
// @Success 201 {object} dto.APIResponse{data=dto.ExamResponse}
// @Failure 400 {object} dto.APIResponse
// @Security BearerAuth
// @Router /exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req dto.CreateExamRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	exam, err := c.examService.CreateExam(ctx.Request.Context(), services.ExamInput{
		ExamName:        req.ExamName,
		ExamDate:        req.ExamDate,
		DurationMinutes: req.Duration,
		AcademicYear:    req.AcademicYear,
		Grade:           req.Grade,
		ClassSection:    req.ClassSection,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewExamResponse(exam)))
}

// RecordResult godoc
// @Summary Record a student's exam result
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "Exam ID"
// @Param request body dto.RecordResultRequest true "Result data"
// @Success 201 {object} dto.APIResponse{data=dto.ExamResultResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Student or exam not found"
// @Failure 409 {object} dto.APIResponse "Result already recorded"
// @Security BearerAuth
// @Router /exams/{id}/results [post]
func (c *ExamController) RecordResult(ctx *gin.Context) {
	examID, ok := parseUUIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RecordResultRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.examService.RecordResult(ctx.Request.Context(), services.ResultInput{
		StudentID:   uuid.MustParse(req.StudentID),
		ExamID:      examID,
		Score:       *req.Score,
		Passed:      req.Passed,
		GradeRating: req.GradeRating,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NewExamResultResponse(result)))
}
