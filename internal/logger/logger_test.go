package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/hello-mvc/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	service, err := NewLoggerService(config.DefaultObservabilityConfig())

	require.NoError(t, err)
	assert.Nil(t, service.GetApplication())
	service.Shutdown(0)
}

func TestNilLoggerService(t *testing.T) {
	var service *LoggerService
	assert.Nil(t, service.GetApplication())
}

func TestNewLogger_JSONFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "info"

	var buf bytes.Buffer
	log := newLogger(&buf, cfg, nil)

	log.Debug().Msg("hidden")
	log.Info().Str("username", "kim").Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "kim", entry["username"])
	assert.Equal(t, config.ServiceName, entry["service"])
	assert.Equal(t, "development", entry["environment"])
}

func TestNewLogger_LevelFromEnvironment(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	assert.Equal(t, zerolog.DebugLevel, newLogger(&bytes.Buffer{}, cfg, nil).GetLevel())

	cfg.Environment = "production"
	assert.Equal(t, zerolog.InfoLevel, newLogger(&bytes.Buffer{}, cfg, nil).GetLevel())

	cfg.Logging.Level = "trace"
	assert.Equal(t, zerolog.TraceLevel, newLogger(&bytes.Buffer{}, cfg, nil).GetLevel())
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Format = "console"

	var buf bytes.Buffer
	l := newLogger(&buf, cfg, nil)
	l.Info().Msg("readable")

	assert.Contains(t, buf.String(), "readable")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	traced := WithTraceContext(log, nil)
	traced.Info().Msg("x")
	assert.NotContains(t, buf.String(), "trace.id")
}
