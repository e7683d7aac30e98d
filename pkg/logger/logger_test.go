package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturas-local/pkg/logger"
)

func TestNew_ProduccionEscribeJSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	log.Component("cell").Warn().Str("key", "invoices").Msg("slot corrupto")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "la salida en producción debe ser JSON")
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "cell", entry["component"])
	assert.Equal(t, "invoices", entry["key"])
	assert.Equal(t, "slot corrupto", entry["message"])
}

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "error", Out: &buf})

	log.Info().Msg("no debe aparecer")
	assert.Zero(t, buf.Len(), "info por debajo del nivel error no se escribe")

	log.Error().Msg("sí aparece")
	assert.Contains(t, buf.String(), "sí aparece")
}

func TestNop_NoEscribeNada(t *testing.T) {
	log := logger.Nop()
	assert.NotPanics(t, func() {
		log.Error().Msg("descartado")
	})
}
