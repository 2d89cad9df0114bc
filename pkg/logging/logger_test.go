package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

func TestTestLoggerCapture(t *testing.T) {
	tl := NewTestLogger(t)

	tl.Info().Str("publication", "bautista2017").Msg("loading fit results")

	if !tl.Contains("bautista2017") {
		t.Error("captured output missing the publication field")
	}
	if !tl.Contains("loading fit results") {
		t.Error("captured output missing the message")
	}
	if got := len(tl.Lines()); got != 1 {
		t.Errorf("Lines() = %d, want 1", got)
	}
}

func TestContextLogger(t *testing.T) {
	tl := NewTestLogger(t)

	ctx := WithLogger(context.Background(), tl.Logger)
	ctx = WithPublication(ctx, "blomqvist2019")
	ctx = WithVariant(ctx, "combined_stdFit")
	ctx = WithOperation(ctx, "verify")

	FromContext(ctx).Info().Msg("checking grid minimum")

	for _, want := range []string{"blomqvist2019", "combined_stdFit", "verify", "checking grid minimum"} {
		if !tl.Contains(want) {
			t.Errorf("captured output missing %q", want)
		}
	}
}

func TestFromContextFallback(t *testing.T) {
	if FromContext(nil) != Default() {
		t.Error("FromContext(nil) did not return the default logger")
	}
	if FromContext(context.Background()) != Default() {
		t.Error("FromContext without a logger did not return the default logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDisableLoggingForTest(t *testing.T) {
	DisableLoggingForTest(t)

	if Default().GetLevel() != zerolog.Disabled {
		t.Error("logging not disabled")
	}
}
