package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCtx_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(zerolog.New(&buf))
	defer SetLogger(prev)

	ctx := ContextWithTraceID(context.Background(), "trace-42")
	Ctx(ctx).Info().Str("phrase", "cozy cafes").Msg("place search failed")

	out := buf.String()
	if !strings.Contains(out, `"trace_id":"trace-42"`) {
		t.Errorf("missing trace id: %s", out)
	}
	if !strings.Contains(out, `"phrase":"cozy cafes"`) {
		t.Errorf("missing field: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"WARN":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
