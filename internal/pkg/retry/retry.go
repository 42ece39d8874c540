package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/yigit/schoolportal/internal/pkg/apperrors"
)

// Policy bounds how often and how patiently a read is retried.
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// NoRetry runs an operation exactly once.
var NoRetry = Policy{MaxAttempts: 1}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		eb.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		eb.MaxInterval = p.MaxInterval
	}
	// attempts are bounded by MaxAttempts, not by wall time
	eb.MaxElapsedTime = 0

	retries := p.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)
}

// Do runs op until it succeeds, fails with a non-transient error, exhausts the
// policy, or ctx is done. Only errors marked transient by apperrors are retried.
func Do[T any](ctx context.Context, p Policy, log zerolog.Logger, op func(ctx context.Context) (T, error)) (T, error) {
	attempt := 0
	operation := func() (T, error) {
		attempt++
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, backoff.Permanent(err)
		}
		v, err := op(ctx)
		if err != nil && !apperrors.IsTransient(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", wait).Msg("Transient store failure, retrying")
	}

	v, err := backoff.RetryNotifyWithData(operation, p.backOff(ctx), notify)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) &&
		!errors.Is(err, apperrors.ErrPersistence) {
		// ctx ended before an attempt or while waiting between attempts
		err = apperrors.NewPersistenceError("retry read", err, false)
	}
	return v, err
}
