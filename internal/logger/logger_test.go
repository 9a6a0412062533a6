package logger_test

import (
	"context"
	"testing"

	"github.com/datacube/topic-search/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"defaults", logger.Config{}},
		{"debug json", logger.Config{Level: "debug", Format: "json"}},
		{"console", logger.Config{Level: "info", Format: "console"}},
		{"unknown level falls back", logger.Config{Level: "chatty"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.cfg)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if l == nil {
				t.Fatal("New() returned nil logger")
			}
			// Must not panic with fields attached.
			l.With(logger.String("k", "v"), logger.Int("n", 1)).Debug("smoke")
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	nop := logger.NewNop()
	ctx := logger.WithContext(context.Background(), nop)

	if got := logger.FromContext(ctx); got != nop {
		t.Error("FromContext did not return the stored logger")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	l := logger.FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext returned nil for empty context")
	}
	// The fallback logger must be usable.
	l.Debug("smoke")
}
