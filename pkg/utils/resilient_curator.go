package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
	"roam/pkg/logging"
	"roam/pkg/metrics"
)

type RetryOptions struct {
	AttemptTimeout  time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// ResilientCurator bounds every model call with a timeout, retries transport
// failures with jittered exponential backoff and sheds load through a breaker.
// Malformed output is never retried.
type ResilientCurator struct {
	inner CuratorClientInterface
	opts  RetryOptions
	cb    *gobreaker.CircuitBreaker[string]
}

func NewResilientCurator(inner CuratorClientInterface, opts RetryOptions, breaker BreakerOptions) *ResilientCurator {
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = 500 * time.Millisecond
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = 5 * time.Second
	}
	breaker.Neutral = func(err error) bool {
		return errors.Is(err, ErrMalformedModelOutput)
	}
	return &ResilientCurator{
		inner: inner,
		opts:  opts,
		cb:    NewCircuitBreaker[string]("curator-"+inner.Provider(), breaker),
	}
}

func (r *ResilientCurator) Provider() string {
	return r.inner.Provider()
}

func (r *ResilientCurator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	provider := r.inner.Provider()
	attempt := 0

	operation := func() (string, error) {
		attempt++
		out, err := r.cb.Execute(func() (string, error) {
			return r.callOnce(ctx, prompt)
		})

		switch {
		case err == nil:
			metrics.CuratorCalls.WithLabelValues(provider, "ok").Inc()
			return out, nil
		case errors.Is(err, ErrMalformedModelOutput):
			metrics.CuratorCalls.WithLabelValues(provider, "malformed").Inc()
			return "", backoff.Permanent(err)
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.CuratorCalls.WithLabelValues(provider, "rejected").Inc()
			return "", backoff.Permanent(err)
		case ctx.Err() != nil:
			metrics.CuratorCalls.WithLabelValues(provider, "error").Inc()
			return "", backoff.Permanent(err)
		default:
			metrics.CuratorCalls.WithLabelValues(provider, "error").Inc()
			logging.Ctx(ctx).Warn().Err(err).Str("provider", provider).Int("attempt", attempt).Msg("curator call failed")
			return "", err
		}
	}

	out, err := backoff.RetryWithData(operation, r.newBackOff(ctx))
	if err == nil {
		return out, nil
	}
	if errors.Is(err, ErrMalformedModelOutput) {
		return "", err
	}
	return "", fmt.Errorf("%w: %s after %d attempt(s): %v", ErrUpstreamUnavailable, provider, attempt, err)
}

func (r *ResilientCurator) callOnce(ctx context.Context, prompt string) (string, error) {
	if r.opts.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.AttemptTimeout)
		defer cancel()
	}
	return r.inner.GenerateJSON(ctx, prompt)
}

func (r *ResilientCurator) newBackOff(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.opts.InitialInterval
	exp.MaxInterval = r.opts.MaxInterval
	exp.RandomizationFactor = 0.5
	exp.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(exp, r.opts.MaxRetries), ctx)
}
