package seed

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/app/repositories/memory"
	appServices "github.com/yigit/schoolportal/internal/app/services"
	"github.com/yigit/schoolportal/internal/config"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
	"github.com/yigit/schoolportal/internal/pkg/auth"
)

func newAuthService(store *memory.Store) appServices.AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "seed", AccessTokenExp: time.Minute, TokenIssuer: "seed"})
	return appServices.NewAuthService(
		store,
		appServices.NewPasswordAuthenticator(store),
		appServices.NewNationalIDAuthenticator(store),
		jwtService,
		zerolog.Nop(),
	)
}

func TestCreateDefaultDataIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newAuthService(store)

	cfg := &config.Config{}
	cfg.Seed.TeacherEmail = "head@school.eg"
	cfg.Seed.TeacherPassword = "changeme123"

	require.NoError(t, CreateDefaultData(ctx, cfg, svc, zerolog.Nop()))
	require.NoError(t, CreateDefaultData(ctx, cfg, svc, zerolog.Nop()))

	teacher, err := store.Teachers().GetByEmail(ctx, "head@school.eg")
	require.NoError(t, err)
	assert.Equal(t, "Administrator", teacher.FullName)

	session, err := svc.LoginTeacher(ctx, "head@school.eg", "changeme123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
}

func TestCreateDefaultDataSkipsWithoutEmail(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, CreateDefaultData(ctx, &config.Config{}, newAuthService(store), zerolog.Nop()))

	_, err := store.Teachers().GetByEmail(ctx, "")
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestCreateDefaultDataRejectsShortPassword(t *testing.T) {
	cfg := &config.Config{}
	cfg.Seed.TeacherEmail = "head@school.eg"
	cfg.Seed.TeacherPassword = "short"

	err := CreateDefaultData(context.Background(), cfg, newAuthService(memory.NewStore()), zerolog.Nop())
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
