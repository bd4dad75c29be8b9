package postgres

import (
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// NewQueryTracer logs every statement through logger. It is noisy and
// only wired in the local env.
func NewQueryTracer(logger zerolog.Logger) pgx.QueryTracer {
	return &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(logger),
		LogLevel: traceLogLevel(logger.GetLevel()),
	}
}

func traceLogLevel(level zerolog.Level) tracelog.LogLevel {
	switch level {
	case zerolog.TraceLevel:
		return tracelog.LogLevelTrace
	case zerolog.DebugLevel:
		return tracelog.LogLevelDebug
	case zerolog.InfoLevel:
		return tracelog.LogLevelInfo
	case zerolog.WarnLevel:
		return tracelog.LogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return tracelog.LogLevelError
	default:
		return tracelog.LogLevelNone
	}
}
