package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"hotel/config"
	"hotel/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()
	format := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
		zerolog.TimeFieldFormat = format
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestConfigure(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantLevel zerolog.Level
		wantJSON  bool
	}{
		{name: "development keeps console output", env: "development", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "production switches to json", env: "production", level: "info", wantLevel: zerolog.InfoLevel, wantJSON: true},
		{name: "unknown level falls back to trace", env: "development", level: "loud", wantLevel: zerolog.TraceLevel},
		{name: "empty level falls back to trace", env: "development", wantLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			var buf bytes.Buffer

			log.Logger = zerolog.New(&buf)

			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Server.LogLevel = tt.level
			cfg.App.Name = "hotel"

			logger.Configure(cfg, &buf)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			if !tt.wantJSON {
				return
			}

			buf.Reset()
			log.Warn().Msg("checkout slow")

			entry := map[string]any{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "hotel", entry["app"])
			assert.Equal(t, "production", entry["env"])
			assert.Equal(t, "checkout slow", entry["message"])
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer

	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	logger.ErrorWithStack(errors.New("settlement failed"))

	assert.Contains(t, buf.String(), "settlement failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}
