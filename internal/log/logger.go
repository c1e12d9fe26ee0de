package log

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

// LoggerKey is the context key under which a request scoped logger is stored
const LoggerKey contextKey = "logger"

// CorrelationIDKey is the field name carrying the correlation id
const CorrelationIDKey = "correlation_id"

// Loggerer is the logging contract used across the gateway
type Loggerer interface {
	Error(err error, message string)
	Info(message string)
	Warn(message string)
}

// Logger is a zerolog backed Loggerer
type Logger struct {
	logger zerolog.Logger
}

var _ Loggerer = &Logger{}

// Error logs an error with its cause
func (logger *Logger) Error(err error, message string) {
	logger.logger.Error().Err(err).Msg(message)
}

// Info logs an informational message
func (logger *Logger) Info(message string) {
	logger.logger.Info().Msg(message)
}

// Warn logs a warning
func (logger *Logger) Warn(message string) {
	logger.logger.Warn().Msg(message)
}

// LogFactoryer creates loggers
type LogFactoryer interface {
	NewLogger() Loggerer
	NewLoggerWithCorrelationID(correlationID string) Loggerer
}

// LogFactory creates zerolog loggers tagged with the environment
type LogFactory struct {
	environment string
	output      io.Writer
}

var _ LogFactoryer = &LogFactory{}

// NewLogFactory creates a log factory writing to stdout
func NewLogFactory(environment string) *LogFactory {
	return &LogFactory{
		environment: environment,
		output:      os.Stdout,
	}
}

// NewLogFactoryWithOutput creates a log factory writing to the given output
func NewLogFactoryWithOutput(environment string, output io.Writer) *LogFactory {
	return &LogFactory{
		environment: environment,
		output:      output,
	}
}

// NewLogger creates a logger with a freshly generated correlation id
func (factory *LogFactory) NewLogger() Loggerer {
	return factory.NewLoggerWithCorrelationID(uuid.NewString())
}

// NewLoggerWithCorrelationID creates a logger tagged with the given correlation id
func (factory *LogFactory) NewLoggerWithCorrelationID(correlationID string) Loggerer {
	logger := zerolog.New(factory.output).
		With().
		Timestamp().
		Str("environment", factory.environment).
		Str(CorrelationIDKey, correlationID).
		Logger()
	return &Logger{logger: logger}
}

// SetVerbose sets the global log level
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// AddLoggerToContext stores the logger in the context
func AddLoggerToContext(ctx context.Context, logger Loggerer) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// GetLoggerFromContext returns the logger stored in the context
func GetLoggerFromContext(ctx context.Context) (Loggerer, error) {
	logger, ok := ctx.Value(LoggerKey).(Loggerer)
	if !ok || logger == nil {
		return nil, errors.New("Logger not found in context")
	}
	return logger, nil
}
