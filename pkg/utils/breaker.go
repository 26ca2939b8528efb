package utils

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
	"roam/pkg/logging"
	"roam/pkg/metrics"
)

type BreakerOptions struct {
	Interval     time.Duration
	Timeout      time.Duration
	MinRequests  uint32
	FailureRatio float64

	// Neutral marks errors that say nothing about the upstream's health.
	// Caller cancellation is always neutral.
	Neutral func(error) bool
}

// NewCircuitBreaker trips once the failure ratio reaches FailureRatio over at
// least MinRequests calls, and reports every transition to logs and metrics.
func NewCircuitBreaker[T any](name string, opts BreakerOptions) *gobreaker.CircuitBreaker[T] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    opts.Interval,
		Timeout:     opts.Timeout,
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return opts.Neutral != nil && opts.Neutral(err)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < opts.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= opts.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},
	})
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
