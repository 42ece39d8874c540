package auth

import (
	"github.com/google/uuid"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/auth"
)

// AuthorizationService decides what an authenticated principal may read
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// IsTeacher checks if the principal is a teacher
func (s *AuthorizationService) IsTeacher(p auth.Principal) bool {
	return p.Role == models.RoleTeacher
}

// CanViewStudent allows teachers to view every student and students to view only themselves.
func (s *AuthorizationService) CanViewStudent(p auth.Principal, studentID uuid.UUID) error {
	switch {
	case s.IsTeacher(p):
		return nil
	case p.Role == models.RoleStudent && p.ID == studentID:
		return nil
	default:
		return apperrors.NewForbiddenError("you can only view your own records")
	}
}
