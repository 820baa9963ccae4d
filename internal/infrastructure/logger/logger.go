// Package logger provides structured logging using zerolog.
// Entries go out as JSON lines or, for an interactive terminal, as a console stream.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// consoleTimeFormat keeps console entries short next to the prompt.
const consoleTimeFormat = "15:04:05"

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is FormatJSON or FormatConsole
	Format string

	// EnableCaller adds caller information to log entries
	EnableCaller bool

	// ServiceName is attached to every entry as "service"
	ServiceName string
}

// DefaultConfig returns info-level JSON logging for the countdown service.
func DefaultConfig() Config {
	return Config{
		Level:       zerolog.InfoLevel.String(),
		Format:      FormatJSON,
		ServiceName: "countdown",
	}
}

// Logger wraps zerolog.Logger with countdown-specific context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output.
// The binary passes the readline instance's stderr so entries do not break the prompt.
// An unknown level falls back to info.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	writer := output
	if cfg.Format == FormatConsole {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: consoleTimeFormat,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)
	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{Logger: ctx.Logger()}
}

// WithCountdownID tags every entry with the engine instance it came from.
func (l *Logger) WithCountdownID(id string) *Logger {
	return &Logger{Logger: l.With().Str("countdown_id", id).Logger()}
}

// Nop returns a disabled logger. Engines use it when no logger is given.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Global is the process-wide logger used by the package-level helpers.
var Global *Logger

// SetGlobal installs l as the process-wide logger.
func SetGlobal(l *Logger) {
	Global = l
}

func global() *Logger {
	if Global == nil {
		Global = New(DefaultConfig())
	}
	return Global
}

// Info starts an info entry on the global logger.
func Info() *zerolog.Event { return global().Info() }

// Warn starts a warn entry on the global logger.
func Warn() *zerolog.Event { return global().Warn() }

// Error starts an error entry on the global logger.
func Error() *zerolog.Event { return global().Error() }
