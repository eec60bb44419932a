// Package logger configura el logging estructurado del proceso con zerolog.
// En development escribe consola legible; en cualquier otro entorno, JSON.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger, tomadas de la configuración de la app
// (APP_ENV y LOG_LEVEL).
type Config struct {
	Env   string
	Level string
}

// Logger logger del proceso. Los handlers usan el logger global de zerolog;
// este wrapper existe para el ciclo de vida en main y para fijar ese global.
type Logger struct {
	zl zerolog.Logger
}

// New crea el logger y lo instala como logger global de zerolog.
// Un nivel no reconocido cae a info.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

// Level devuelve el nivel efectivo del logger.
func (l *Logger) Level() zerolog.Level { return l.zl.GetLevel() }

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
