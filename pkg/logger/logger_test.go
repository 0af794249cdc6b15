package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Finanzas-api/pkg/logger"
)

func TestNew_JSONFueraDeDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado")
	log.Component("http").Warn().Str("path", "/api").Msg("lento")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "una sola línea JSON: %s", buf.String())
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "/api", entry["path"])
	assert.Equal(t, "lento", entry["message"])
}

func TestNew_NivelInvalidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "ruidoso", Output: &buf})

	log.Debug().Msg("no")
	assert.Zero(t, buf.Len())
	log.Info().Msg("si")
	assert.NotZero(t, buf.Len())
}
