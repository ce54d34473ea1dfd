package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
)

var (
	currentLevel = getLogLevel()

	outputMu sync.RWMutex
	output   = newLogger(os.Stderr)
)

const (
	APP        = "APP"
	CHAT       = "CHAT"
	CONFIG     = "CONFIG"
	HANDLER    = "HANDLER"
	MIDDLEWARE = "MIDDLEWARE"
	REDIS      = "REDIS"
	SERVICE    = "SERVICE"
	STORE      = "STORE"
	WEBSOCKET  = "WEBSOCKET"
	WIDGET     = "WIDGET"
)

func getLogLevel() LogLevel {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetOutput redirects both the namespace loggers and the global zerolog
// logger to w.
func SetOutput(w io.Writer) {
	l := newLogger(w)

	outputMu.Lock()
	output = l
	outputMu.Unlock()

	log.Logger = l
}

// SetConsoleOutput is SetOutput with zerolog's human readable console writer.
func SetConsoleOutput(w io.Writer) {
	SetOutput(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
}

func formatMessage(format string, v ...interface{}) string {
	if len(v) == 0 {
		return format
	}
	return fmt.Sprintf(format, v...)
}

func emit(level zerolog.Level, namespace, format string, v ...interface{}) {
	outputMu.RLock()
	l := output
	outputMu.RUnlock()

	l.WithLevel(level).Str("namespace", namespace).Msg(formatMessage(format, v...))
}

func Debug(namespace, format string, v ...interface{}) {
	if currentLevel >= DEBUG {
		emit(zerolog.DebugLevel, namespace, format, v...)
	}
}

func Info(namespace, format string, v ...interface{}) {
	if currentLevel >= INFO {
		emit(zerolog.InfoLevel, namespace, format, v...)
	}
}

func Warn(namespace, format string, v ...interface{}) {
	if currentLevel >= WARN {
		emit(zerolog.WarnLevel, namespace, format, v...)
	}
}

func Error(namespace, format string, v ...interface{}) {
	if currentLevel >= ERROR {
		emit(zerolog.ErrorLevel, namespace, format, v...)
	}
}

// Fatal logs at fatal level without exiting; callers decide how to stop.
func Fatal(namespace, format string, v ...interface{}) {
	emit(zerolog.FatalLevel, namespace, format, v...)
}
