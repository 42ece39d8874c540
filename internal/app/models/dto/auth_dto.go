package dto

import "github.com/yigit/schoolportal/internal/app/models"

// TeacherLoginRequest represents teacher credentials
type TeacherLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"teacher@school.eg"`
	Password string `json:"password" binding:"required"`
}

// StudentLoginRequest carries the national ID students sign in with
type StudentLoginRequest struct {
	NationalID string `json:"nationalId" binding:"required" example:"29901011234567"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"43200"`
}

// TeacherResponse is the public view of a teacher account
type TeacherResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse   `json:"token"`
	Role  models.RoleType `json:"role" example:"TEACHER" enums:"TEACHER,STUDENT"`
	User  interface{}     `json:"user"`
}

// NewTeacherResponse maps a teacher model
func NewTeacherResponse(t *models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:       t.ID.String(),
		Email:    t.Email,
		FullName: t.FullName,
	}
}
