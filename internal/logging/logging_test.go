package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/cytoskel/cytotraj/internal/logging"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.New("info", buf)
	gt.V(t, logger).NotNil()

	logger.Info("frames read", "n", 42)
	gt.S(t, buf.String()).Contains("frames read")
}

func TestLevels(t *testing.T) {
	testCases := []struct {
		level       string
		expectDebug bool
		expectInfo  bool
		expectWarn  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"warning", false, false, true},
		{"ERROR", false, false, false},
		{"loud", false, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.New(tc.level, buf)
			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")

			output := buf.String()
			if tc.expectDebug {
				gt.S(t, output).Contains("debug message")
			} else {
				gt.S(t, output).NotContains("debug message")
			}
			if tc.expectInfo {
				gt.S(t, output).Contains("info message")
			} else {
				gt.S(t, output).NotContains("info message")
			}
			if tc.expectWarn {
				gt.S(t, output).Contains("warn message")
			} else {
				gt.S(t, output).NotContains("warn message")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, ok := logging.ParseLevel(" Warn ")
	gt.True(t, ok)
	gt.Equal(t, l, slog.LevelWarn)
	l, ok = logging.ParseLevel("verbose")
	gt.False(t, ok)
	gt.Equal(t, l, slog.LevelInfo)
}

func TestWithAndFrom(t *testing.T) {
	ctx := context.Background()
	buf := &bytes.Buffer{}
	logger := logging.New("debug", buf).With("replicate", 3)

	ctx = logging.With(ctx, logger)
	retrieved := logging.From(ctx)
	gt.Equal(t, retrieved, logger)

	retrieved.Info("context message")
	gt.S(t, buf.String()).Contains("context message")
	gt.S(t, buf.String()).Contains("replicate")
}

func TestSetDefault(t *testing.T) {
	original := logging.Default()
	gt.V(t, original).NotNil()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	newLogger := logging.New("debug", buf)
	logging.SetDefault(newLogger)
	gt.Equal(t, logging.Default(), newLogger)
	gt.Equal(t, logging.From(context.Background()), newLogger)

	logging.From(context.Background()).Info("default message")
	gt.S(t, buf.String()).Contains("default message")
}
