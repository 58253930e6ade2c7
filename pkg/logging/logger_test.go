package logging_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/merakiaddr/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(original)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	buf := &bytes.Buffer{}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetDefault(zerolog.New(buf).Level(zerolog.DebugLevel))

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		assert.Contains(t, output, msg)
	}
}

func TestConfiguration(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	configs := []struct {
		name   string
		config *logging.Config
		check  func(t *testing.T, output string)
	}{
		{
			name:   "debug level",
			config: &logging.Config{Level: "debug", Format: "json", Output: "discard"},
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, `"level":"debug"`)
			},
		},
		{
			name:   "error level only",
			config: &logging.Config{Level: "error", Format: "json", Output: "discard"},
			check: func(t *testing.T, output string) {
				assert.NotContains(t, output, `"level":"info"`)
				assert.Contains(t, output, `"level":"error"`)
			},
		},
		{
			name:   "warning alias",
			config: &logging.Config{Level: "warning", Format: "json", Output: "discard"},
			check: func(t *testing.T, output string) {
				assert.NotContains(t, output, `"level":"info"`)
			},
		},
		{
			name: "default fields",
			config: &logging.Config{
				Level:  "info",
				Format: "json",
				Output: "discard",
				Fields: map[string]any{"network_id": "N_1234"},
			},
			check: func(t *testing.T, output string) {
				assert.Contains(t, output, `"network_id":"N_1234"`)
			},
		},
	}

	for _, tc := range configs {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := logging.NewLoggerFromConfig(tc.config).Output(buf)

			logger.Debug().Msg("debug")
			logger.Info().Msg("info")
			logger.Error().Msg("error")

			tc.check(t, buf.String())
		})
	}
}

func TestConfigFileOutput(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	path := t.TempDir() + "/merakiaddr.log"
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "info",
		Format: "json",
		Output: path,
	})
	logger.Info().Msg("written to file")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "written to file")
}

func TestDefaultConfig(t *testing.T) {
	cfg := logging.DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Format)
	assert.Equal(t, "stderr", cfg.Output)
	assert.False(t, cfg.AddCaller)
}

func TestContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRunID(ctx, "run-1")
	ctx = logging.WithNetwork(ctx, "N_1234")
	ctx = logging.WithSerial(ctx, "Q2XX-1111-2222")

	logging.FromContext(ctx).Info().Msg("reconciling")

	tl.AssertContains(t, `"run_id":"run-1"`)
	tl.AssertContains(t, `"network_id":"N_1234"`)
	tl.AssertContains(t, `"serial":"Q2XX-1111-2222"`)
	assert.Equal(t, "run-1", logging.RunID(ctx))
	assert.Equal(t, 1, tl.Count())
}

func TestFromContextDefaults(t *testing.T) {
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))
	assert.Same(t, logging.Default(), logging.Ctx(context.Background()))
	assert.Empty(t, logging.RunID(context.Background()))
}

func TestTestLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	tl.Logger.Info().Msg("message 1")
	tl.Logger.Warn().Msg("message 2")

	tl.AssertContains(t, "message 1")
	tl.AssertNotContains(t, "message 3")
	assert.Equal(t, 2, tl.Count())
	assert.True(t, strings.HasPrefix(tl.Lines()[0], "{"))

	tl.Clear()
	assert.Equal(t, 0, tl.Count())
}
