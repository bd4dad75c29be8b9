package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
)

func TestConnString(t *testing.T) {
	db := New(zerolog.Nop(), config.PostgresConfig{
		Host:     "db.internal",
		Port:     5433,
		Username: "tasks",
		Password: "p@ss word:/",
		Database: "tracker",
		SSLMode:  "require",
	})

	connCfg, err := pgx.ParseConfig(db.ConnString())
	if err != nil {
		t.Fatalf("failed to parse conn string %q: %v", db.ConnString(), err)
	}

	if connCfg.Host != "db.internal" {
		t.Errorf("expected host db.internal, got %q", connCfg.Host)
	}
	if connCfg.Port != 5433 {
		t.Errorf("expected port 5433, got %d", connCfg.Port)
	}
	if connCfg.User != "tasks" {
		t.Errorf("expected user tasks, got %q", connCfg.User)
	}
	if connCfg.Password != "p@ss word:/" {
		t.Errorf("expected password to survive escaping, got %q", connCfg.Password)
	}
	if connCfg.Database != "tracker" {
		t.Errorf("expected database tracker, got %q", connCfg.Database)
	}
}

func unreachableDB() *DB {
	return New(zerolog.Nop(), config.PostgresConfig{
		Host:           "127.0.0.1",
		Port:           1,
		Username:       "tasks",
		Password:       "secret",
		Database:       "tasks",
		SSLMode:        "disable",
		ConnectTimeout: 2 * time.Second,
	})
}

func TestOperationsReportConnectionFailure(t *testing.T) {
	db := unreachableDB()
	ctx := context.Background()

	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "connect",
			run: func() error {
				_, err := db.Connect(ctx)
				return err
			},
		},
		{
			name: "exec",
			run: func() error {
				_, err := db.Exec(ctx, "DELETE FROM tasks WHERE id = $1", 1)
				return err
			},
		},
		{
			name: "ping",
			run: func() error {
				return db.Ping(ctx)
			},
		},
		{
			name: "fetch all",
			run: func() error {
				_, err := FetchAll(ctx, db, pgx.RowTo[int64], "SELECT id FROM tasks")
				return err
			},
		},
		{
			name: "fetch one",
			run: func() error {
				_, err := FetchOne(ctx, db, pgx.RowTo[int64], "SELECT 1")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrConnectionFailed) {
				t.Errorf("expected ErrConnectionFailed, got %v", err)
			}
		})
	}
}

func TestTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		if got := traceLogLevel(tt.level); got != tt.want {
			t.Errorf("traceLogLevel(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestWithQueryTracer(t *testing.T) {
	tracer := NewQueryTracer(zerolog.Nop())
	db := New(zerolog.Nop(), config.PostgresConfig{}, WithQueryTracer(tracer))

	if db.tracer != tracer {
		t.Error("expected tracer to be attached")
	}
}
