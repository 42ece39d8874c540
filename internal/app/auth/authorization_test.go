package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/auth"
)

func TestCanViewStudent(t *testing.T) {
	s := NewAuthorizationService()
	self := uuid.New()
	other := uuid.New()

	assert.NoError(t, s.CanViewStudent(auth.Principal{ID: uuid.New(), Role: models.RoleTeacher}, other))
	assert.NoError(t, s.CanViewStudent(auth.Principal{ID: self, Role: models.RoleStudent}, self))

	err := s.CanViewStudent(auth.Principal{ID: self, Role: models.RoleStudent}, other)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = s.CanViewStudent(auth.Principal{ID: self, Role: "GUEST"}, self)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}
