package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/restaurante-api/pkg/logger"
)

func TestNew_NivelConfigurado(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Level())
}

func TestNew_NivelDesconocido_CaeAInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "gritando"})
	assert.Equal(t, zerolog.InfoLevel, l.Level())
}

func TestNew_InstalaLoggerGlobal(t *testing.T) {
	// Los handlers loguean con el global de zerolog; New debe dejarlo configurado.
	logger.New(logger.Config{Env: "production", Level: "error"})
	assert.Equal(t, zerolog.ErrorLevel, log.Logger.GetLevel())
}
