package services

import (
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/app/repositories"
	"github.com/yigit/schoolportal/internal/pkg/auth"
	"github.com/yigit/schoolportal/internal/pkg/retry"
)

// Services bundles every service built on one store
type Services struct {
	Auth       AuthService
	Students   StudentService
	Tasks      TaskService
	Summary    SummaryService
	Attendance AttendanceService
	Exams      ExamService
}

// NewServices wires all services to the given store. notifier may be nil.
func NewServices(store repositories.Store, jwtService *auth.JWTService, policy retry.Policy, notifier AssignmentNotifier, logger zerolog.Logger) *Services {
	return &Services{
		Auth: NewAuthService(
			store,
			NewPasswordAuthenticator(store),
			NewNationalIDAuthenticator(store),
			jwtService,
			logger.With().Str("service", "auth").Logger(),
		),
		Students:   NewStudentService(store, policy, logger.With().Str("service", "students").Logger()),
		Tasks:      NewTaskService(store, policy, notifier, logger.With().Str("service", "tasks").Logger()),
		Summary:    NewSummaryService(store, policy, logger.With().Str("service", "summary").Logger()),
		Attendance: NewAttendanceService(store, policy, logger.With().Str("service", "attendance").Logger()),
		Exams:      NewExamService(store, policy, logger.With().Str("service", "exams").Logger()),
	}
}
