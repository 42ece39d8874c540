// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models/dto"
	"github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/middleware"
)

// AuthController handles sign-in for teachers and students
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

func newAuthResponse(s *services.Session) dto.AuthResponse {
	resp := dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: s.AccessToken,
			TokenType:   "Bearer",
			ExpiresIn:   s.ExpiresIn,
		},
		Role: s.Role,
	}
	switch {
	case s.Teacher != nil:
		resp.User = dto.NewTeacherResponse(s.Teacher)
	case s.Student != nil:
		resp.User = dto.NewStudentResponse(s.Student)
	}
	return resp
}

// LoginTeacher handles teacher login
// @Summary Teacher login
// @Description Authenticates a teacher with email and password and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TeacherLoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request format or validation error"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/teacher/login [post]
func (c *AuthController) LoginTeacher(ctx *gin.Context) {
	var req dto.TeacherLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	session, err := c.authService.LoginTeacher(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(newAuthResponse(session)))
}

// LoginStudent handles student login
// @Summary Student login
// @Description Authenticates a student by national ID and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLoginRequest true "National ID"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 404 {object} dto.APIResponse "No student with this national ID"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /auth/student/login [post]
func (c *AuthController) LoginStudent(ctx *gin.Context) {
	var req dto.StudentLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	session, err := c.authService.LoginStudent(ctx.Request.Context(), req.NationalID)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Student login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(newAuthResponse(session)))
}
