package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
)

type scriptedCurator struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedCurator) Provider() string { return "fake" }

func (s *scriptedCurator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", errors.New("no scripted response")
}

type blockingCurator struct{}

func (blockingCurator) Provider() string { return "blocking" }

func (blockingCurator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func fastRetry(maxRetries uint64) RetryOptions {
	return RetryOptions{
		AttemptTimeout:  time.Second,
		MaxRetries:      maxRetries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
	}
}

func testBreaker() BreakerOptions {
	return BreakerOptions{Interval: time.Minute, Timeout: time.Minute, MinRequests: 100, FailureRatio: 1}
}

func TestResilientCurator(t *testing.T) {
	transient := errors.New("connection reset")

	tests := []struct {
		name      string
		inner     *scriptedCurator
		retries   uint64
		want      string
		wantErr   error
		wantCalls int
	}{
		{
			name:      "first attempt succeeds",
			inner:     &scriptedCurator{responses: []string{`{"stops":[]}`}},
			retries:   2,
			want:      `{"stops":[]}`,
			wantCalls: 1,
		},
		{
			name:      "transient error is retried",
			inner:     &scriptedCurator{errs: []error{transient}, responses: []string{"", `{"stops":[]}`}},
			retries:   2,
			want:      `{"stops":[]}`,
			wantCalls: 2,
		},
		{
			name:      "retries exhausted",
			inner:     &scriptedCurator{errs: []error{transient, transient, transient}},
			retries:   2,
			wantErr:   ErrUpstreamUnavailable,
			wantCalls: 3,
		},
		{
			name:      "malformed output is not retried",
			inner:     &scriptedCurator{errs: []error{ErrMalformedModelOutput}},
			retries:   2,
			wantErr:   ErrMalformedModelOutput,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewResilientCurator(tt.inner, fastRetry(tt.retries), testBreaker())

			got, err := rc.GenerateJSON(context.Background(), "prompt")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tt.inner.calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", tt.inner.calls, tt.wantCalls)
			}
		})
	}
}

func TestResilientCurator_AttemptTimeout(t *testing.T) {
	opts := fastRetry(0)
	opts.AttemptTimeout = 10 * time.Millisecond
	rc := NewResilientCurator(blockingCurator{}, opts, testBreaker())

	start := time.Now()
	_, err := rc.GenerateJSON(context.Background(), "prompt")
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("err = %v, want ErrUpstreamUnavailable", err)
	}
	if time.Since(start) > time.Second {
		t.Error("attempt timeout was not applied")
	}
}

func TestResilientCurator_BreakerIgnoresRequestScopedErrors(t *testing.T) {
	tripFast := BreakerOptions{Interval: time.Minute, Timeout: time.Minute, MinRequests: 3, FailureRatio: 0.6}

	t.Run("malformed answers", func(t *testing.T) {
		inner := &scriptedCurator{
			errs:      []error{ErrMalformedModelOutput, ErrMalformedModelOutput, ErrMalformedModelOutput},
			responses: []string{"", "", "", `{"stops":[]}`},
		}
		rc := NewResilientCurator(inner, fastRetry(0), tripFast)

		for i := 0; i < 3; i++ {
			if _, err := rc.GenerateJSON(context.Background(), "prompt"); !errors.Is(err, ErrMalformedModelOutput) {
				t.Fatalf("call %d: err = %v, want ErrMalformedModelOutput", i, err)
			}
		}
		got, err := rc.GenerateJSON(context.Background(), "prompt")
		if err != nil {
			t.Fatalf("healthy call after malformed answers failed: %v", err)
		}
		if got != `{"stops":[]}` {
			t.Errorf("got %q", got)
		}
	})

	t.Run("caller cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		rc := NewResilientCurator(blockingCurator{}, fastRetry(0), tripFast)
		for i := 0; i < 3; i++ {
			_, _ = rc.GenerateJSON(ctx, "prompt")
		}
		if state := rc.cb.State(); state != gobreaker.StateClosed {
			t.Errorf("breaker state = %s, want closed", state)
		}
	})

	t.Run("transport failures still trip", func(t *testing.T) {
		transient := errors.New("connection reset")
		inner := &scriptedCurator{errs: []error{transient, transient, transient}}
		rc := NewResilientCurator(inner, fastRetry(0), tripFast)

		for i := 0; i < 3; i++ {
			_, _ = rc.GenerateJSON(context.Background(), "prompt")
		}
		if state := rc.cb.State(); state != gobreaker.StateOpen {
			t.Errorf("breaker state = %s, want open", state)
		}
	})
}
