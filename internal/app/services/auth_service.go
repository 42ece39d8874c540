package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/models"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/auth"
	"github.com/yigit/schoolportal/internal/pkg/validation"
)

// invalidNationalIDMessage is shown to students whose national ID is not on record
const invalidNationalIDMessage = "الرقم القومي غير صحيح"

// TeacherAuthenticator verifies a teacher's email and password
type TeacherAuthenticator interface {
	AuthenticateTeacher(ctx context.Context, email, password string) (*models.Teacher, error)
}

// StudentAuthenticator resolves a student from their login credential
type StudentAuthenticator interface {
	AuthenticateStudent(ctx context.Context, nationalID string) (*models.Student, error)
}

// PasswordAuthenticator checks teacher credentials against bcrypt hashes
type PasswordAuthenticator struct {
	store repositories.Store
}

// NewPasswordAuthenticator creates the default teacher authenticator
func NewPasswordAuthenticator(store repositories.Store) *PasswordAuthenticator {
	return &PasswordAuthenticator{store: store}
}

// AuthenticateTeacher returns ErrInvalidCredentials for an unknown email or a wrong password alike.
func (a *PasswordAuthenticator) AuthenticateTeacher(ctx context.Context, email, password string) (*models.Teacher, error) {
	teacher, err := a.store.Teachers().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			auth.BurnPasswordCheck(password)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(teacher.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return teacher, nil
}

// NationalIDAuthenticator signs students in by national ID alone
type NationalIDAuthenticator struct {
	store repositories.Store
}

// NewNationalIDAuthenticator creates the default student authenticator
func NewNationalIDAuthenticator(store repositories.Store) *NationalIDAuthenticator {
	return &NationalIDAuthenticator{store: store}
}

func (a *NationalIDAuthenticator) AuthenticateStudent(ctx context.Context, nationalID string) (*models.Student, error) {
	student, err := a.store.Students().GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrStudentNotFound, invalidNationalIDMessage)
		}
		return nil, err
	}
	return student, nil
}

// Session is an authenticated principal with its access token
type Session struct {
	AccessToken string
	ExpiresIn   int
	Role        models.RoleType
	Teacher     *models.Teacher
	Student     *models.Student
}

// TeacherInput registers a teacher account
type TeacherInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"notblank"`
}

// AuthService handles sign-in for both roles and teacher registration
type AuthService interface {
	LoginTeacher(ctx context.Context, email, password string) (*Session, error)
	LoginStudent(ctx context.Context, nationalID string) (*Session, error)
	RegisterTeacher(ctx context.Context, in TeacherInput) (*models.Teacher, error)
}

type authServiceImpl struct {
	store    repositories.Store
	teachers TeacherAuthenticator
	students StudentAuthenticator
	jwt      *auth.JWTService
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	store repositories.Store,
	teachers TeacherAuthenticator,
	students StudentAuthenticator,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		store:    store,
		teachers: teachers,
		students: students,
		jwt:      jwtService,
		logger:   logger,
	}
}

func (s *authServiceImpl) LoginTeacher(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	teacher, err := s.teachers.AuthenticateTeacher(ctx, email, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.logger.Warn().Str("email", email).Msg("Teacher login rejected")
		}
		return nil, err
	}

	token, expiresIn, err := s.jwt.GenerateToken(auth.Principal{ID: teacher.ID, Name: teacher.FullName, Role: models.RoleTeacher})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("teacherID", teacher.ID.String()).Msg("Teacher logged in")
	return &Session{AccessToken: token, ExpiresIn: expiresIn, Role: models.RoleTeacher, Teacher: teacher}, nil
}

func (s *authServiceImpl) LoginStudent(ctx context.Context, nationalID string) (*Session, error) {
	if err := validation.Struct(struct {
		NationalID string `json:"nationalId" validate:"notblank"`
	}{nationalID}); err != nil {
		return nil, err
	}

	student, err := s.students.AuthenticateStudent(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwt.GenerateToken(auth.Principal{ID: student.ID, Name: student.FullName, Role: models.RoleStudent})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("studentID", student.ID.String()).Msg("Student logged in")
	return &Session{AccessToken: token, ExpiresIn: expiresIn, Role: models.RoleStudent, Student: student}, nil
}

func (s *authServiceImpl) RegisterTeacher(ctx context.Context, in TeacherInput) (*models.Teacher, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{Email: in.Email, PasswordHash: hash, FullName: in.FullName}
	if err := s.store.Teachers().Create(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info().Str("teacherID", teacher.ID.String()).Str("email", teacher.Email).Msg("Teacher registered")
	return teacher, nil
}
