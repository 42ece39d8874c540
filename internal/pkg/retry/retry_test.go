package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

var fast = Policy{MaxAttempts: 3, InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond}

func TestDoRetriesTransientUntilSuccess(t *testing.T) {
	calls := 0
	v, err := Do(context.Background(), fast, zerolog.Nop(), func(ctx context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, apperrors.NewPersistenceError("list", errors.New("conn reset"), true)
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 3, calls)
}

func TestDoGivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fast, zerolog.Nop(), func(ctx context.Context) (int, error) {
		calls++
		return 0, apperrors.NewPersistenceError("list", errors.New("conn reset"), true)
	})

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Equal(t, 3, calls)
}

func TestDoDoesNotRetryPermanentErrors(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), fast, zerolog.Nop(), func(ctx context.Context) (int, error) {
		calls++
		return 0, apperrors.NewPersistenceError("list", errors.New("syntax"), false)
	})

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Equal(t, 1, calls)
}

func TestDoStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := Do(ctx, fast, zerolog.Nop(), func(ctx context.Context) (int, error) {
		calls++
		return 0, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.Equal(t, 0, calls)
}

func TestDoCancelledDuringBackoffIsPersistenceError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	slow := Policy{MaxAttempts: 5, InitialInterval: time.Second, MaxInterval: time.Second}

	calls := 0
	_, err := Do(ctx, slow, zerolog.Nop(), func(ctx context.Context) (int, error) {
		calls++
		cancel()
		return 0, apperrors.NewPersistenceError("list", errors.New("conn reset"), true)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, apperrors.IsTransient(err))
	assert.Equal(t, 1, calls)
}

func TestDoKeepsNonPersistenceErrors(t *testing.T) {
	_, err := Do(context.Background(), fast, zerolog.Nop(), func(ctx context.Context) (int, error) {
		return 0, apperrors.ErrResourceNotFound
	})

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrPersistence)
}

func TestNoRetryRunsOnce(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), NoRetry, zerolog.Nop(), func(ctx context.Context) (string, error) {
		calls++
		return "", apperrors.NewPersistenceError("list", errors.New("conn reset"), true)
	})

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
