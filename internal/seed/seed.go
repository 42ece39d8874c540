package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appServices "github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/config"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

// CreateDefaultData registers the configured default teacher if it does not exist yet.
// Nothing is created when no seed email is configured.
func CreateDefaultData(ctx context.Context, cfg *config.Config, authService appServices.AuthService, lgr zerolog.Logger) error {
	if cfg.Seed.TeacherEmail == "" {
		lgr.Debug().Msg("No default teacher configured, skipping seed")
		return nil
	}

	lgr.Info().Str("email", cfg.Seed.TeacherEmail).Msg("Checking/Creating default teacher...")

	name := cfg.Seed.TeacherName
	if name == "" {
		name = "Administrator"
	}

	teacher, err := authService.RegisterTeacher(ctx, appServices.TeacherInput{
		Email:    cfg.Seed.TeacherEmail,
		Password: cfg.Seed.TeacherPassword,
		FullName: name,
	})
	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		lgr.Info().Msg("Default teacher already exists, skipping creation")
		return nil
	case err != nil:
		return err
	}

	lgr.Info().Str("teacherID", teacher.ID.String()).Msg("Default teacher created successfully")
	return nil
}
