package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var Log zerolog.Logger

func configureLogger() {
	customTimeFormat := "2006-01-02T15:04:05.000Z07:00"
	zerolog.TimeFieldFormat = customTimeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: customTimeFormat,
	}

	Log = zerolog.New(output).With().Timestamp().Logger()
}

// GetLoggerConfigured returns the shared logger and sets the global level.
// The level is applied on every call, so a later caller (a test, the CLI after
// reading its config) can still quieten or raise it.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(configureLogger)
	zerolog.SetGlobalLevel(level)
	return &Log
}

func GetLogger() *zerolog.Logger {
	once.Do(configureLogger)
	return &Log
}
