package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger defines the minimal logging interface used across the module.
// Arguments are alternating key/value pairs, as in slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// LogLevel represents the severity of a log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SlogAdapter adapts a *slog.Logger to the Logger interface.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps an existing slog logger. A nil logger falls back
// to slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// NewDefaultSlogLogger returns a text-format slog adapter writing to
// stderr at the given level.
func NewDefaultSlogLogger(level LogLevel) *SlogAdapter {
	return NewSlogLogger(Config{Level: level, Format: FormatText, Output: os.Stderr})
}

func (s *SlogAdapter) Debug(msg string, args ...any) { s.logger.Debug(msg, args...) }
func (s *SlogAdapter) Info(msg string, args ...any)  { s.logger.Info(msg, args...) }
func (s *SlogAdapter) Warn(msg string, args ...any)  { s.logger.Warn(msg, args...) }
func (s *SlogAdapter) Error(msg string, args ...any) { s.logger.Error(msg, args...) }

// Unwrap exposes the underlying slog logger.
func (s *SlogAdapter) Unwrap() *slog.Logger { return s.logger }

// Format selects the output encoding of a logger built from Config.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config controls the construction of a slog-backed logger.
type Config struct {
	Level     LogLevel
	Format    Format
	Output    io.Writer
	AddSource bool
}

// DefaultConfig returns the configuration used when none is supplied:
// info-level text logging to stderr.
func DefaultConfig() Config {
	return Config{Level: LevelInfo, Format: FormatText, Output: os.Stderr}
}

// NewSlogLogger builds a slog adapter from the given configuration.
func NewSlogLogger(cfg Config) *SlogAdapter {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     cfg.Level.slogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return &SlogAdapter{logger: slog.New(handler)}
}

// NoOpLogger discards all log entries.
type NoOpLogger struct{}

// NewNoOpLogger returns a logger that drops everything.
func NewNoOpLogger() *NoOpLogger { return &NoOpLogger{} }

func (n *NoOpLogger) Debug(msg string, args ...any) {}
func (n *NoOpLogger) Info(msg string, args ...any)  {}
func (n *NoOpLogger) Warn(msg string, args ...any)  {}
func (n *NoOpLogger) Error(msg string, args ...any) {}

// AdvisorLogger wraps a Logger with contextual attributes and
// domain-specific helpers for logging turns, tool calls and model calls.
type AdvisorLogger struct {
	base  Logger
	attrs []any
}

// NewAdvisorLogger wraps base with no initial attributes. A nil base
// yields a no-op advisor logger.
func NewAdvisorLogger(base Logger) *AdvisorLogger {
	if base == nil {
		base = NewNoOpLogger()
	}
	return &AdvisorLogger{base: base}
}

// WithComponent returns a logger that tags every entry with the
// component name.
func (a *AdvisorLogger) WithComponent(name string) *AdvisorLogger {
	return a.with("component", name)
}

// WithUser returns a logger that tags every entry with the user ID.
func (a *AdvisorLogger) WithUser(userID string) *AdvisorLogger {
	return a.with("user_id", userID)
}

// WithTurn returns a logger that tags every entry with the turn ID.
func (a *AdvisorLogger) WithTurn(turnID string) *AdvisorLogger {
	return a.with("turn_id", turnID)
}

func (a *AdvisorLogger) with(key string, value any) *AdvisorLogger {
	attrs := make([]any, 0, len(a.attrs)+2)
	attrs = append(attrs, a.attrs...)
	attrs = append(attrs, key, value)
	return &AdvisorLogger{base: a.base, attrs: attrs}
}

func (a *AdvisorLogger) expand(args []any) []any {
	if len(a.attrs) == 0 {
		return args
	}
	out := make([]any, 0, len(a.attrs)+len(args))
	out = append(out, a.attrs...)
	out = append(out, args...)
	return out
}

func (a *AdvisorLogger) Debug(msg string, args ...any) { a.base.Debug(msg, a.expand(args)...) }
func (a *AdvisorLogger) Info(msg string, args ...any)  { a.base.Info(msg, a.expand(args)...) }
func (a *AdvisorLogger) Warn(msg string, args ...any)  { a.base.Warn(msg, a.expand(args)...) }
func (a *AdvisorLogger) Error(msg string, args ...any) { a.base.Error(msg, a.expand(args)...) }

// LogToolCall records a completed tool invocation.
func (a *AdvisorLogger) LogToolCall(toolName string, duration time.Duration, err error) {
	if err != nil {
		a.Error("tool call failed", "tool", toolName, "duration", duration, "error", err)
		return
	}
	a.Debug("tool call completed", "tool", toolName, "duration", duration)
}

// LogModelCall records a completed model invocation.
func (a *AdvisorLogger) LogModelCall(provider, model string, duration time.Duration, err error) {
	if err != nil {
		a.Error("model call failed", "provider", provider, "model", model, "duration", duration, "error", err)
		return
	}
	a.Debug("model call completed", "provider", provider, "model", model, "duration", duration)
}

// LogTurn records the outcome of a conversation turn.
func (a *AdvisorLogger) LogTurn(turnID string, duration time.Duration, err error) {
	if err != nil {
		a.Error("turn failed", "turn_id", turnID, "duration", duration, "error", err)
		return
	}
	a.Info("turn completed", "turn_id", turnID, "duration", duration)
}
