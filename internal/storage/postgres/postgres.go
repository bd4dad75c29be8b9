// Package postgres is the data access layer. It holds no connection
// between calls: every operation opens its own connection, runs a single
// statement and releases the connection before returning.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
)

// ErrConnectionFailed wraps every error caused by failing to open a connection.
var ErrConnectionFailed = errors.New("database connection failed")

const closeTimeout = 5 * time.Second

type DB struct {
	logger zerolog.Logger
	cfg    config.PostgresConfig
	tracer pgx.QueryTracer
}

type Option func(*DB)

// WithQueryTracer attaches a tracer to every connection opened by the DB.
func WithQueryTracer(tracer pgx.QueryTracer) Option {
	return func(db *DB) {
		db.tracer = tracer
	}
}

func New(logger zerolog.Logger, cfg config.PostgresConfig, opts ...Option) *DB {
	db := &DB{
		logger: logger,
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func (db *DB) ConnString() string {
	connURL := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(db.cfg.Username, db.cfg.Password),
		Host:     net.JoinHostPort(db.cfg.Host, strconv.Itoa(db.cfg.Port)),
		Path:     "/" + db.cfg.Database,
		RawQuery: url.Values{"sslmode": {db.cfg.SSLMode}}.Encode(),
	}
	return connURL.String()
}

// Connect opens a new connection. The caller owns it and must close it.
func (db *DB) Connect(ctx context.Context) (*pgx.Conn, error) {
	connCfg, err := pgx.ParseConfig(db.ConnString())
	if err != nil {
		db.logger.Error().
			Err(err).
			Msg("failed to parse postgres config")
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	if db.cfg.ConnectTimeout > 0 {
		connCfg.ConnectTimeout = db.cfg.ConnectTimeout
	}
	if db.tracer != nil {
		connCfg.Tracer = db.tracer
	}

	conn, err := pgx.ConnectConfig(ctx, connCfg)
	if err != nil {
		db.logger.Error().
			Err(err).
			Str("host", db.cfg.Host).
			Int("port", db.cfg.Port).
			Msg("failed to connect to postgres")
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	db.logger.Trace().
		Str("host", db.cfg.Host).
		Int("port", db.cfg.Port).
		Msg("connected to postgres")
	return conn, nil
}

func (db *DB) release(conn *pgx.Conn) {
	// The caller's context may be cancelled by now.
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	err := conn.Close(ctx)
	if err != nil {
		db.logger.Warn().
			Err(err).
			Msg("failed to close postgres connection")
		return
	}
	db.logger.Trace().Msg("closed postgres connection")
}

// Exec runs a single statement on a fresh connection and returns the
// number of affected rows.
func (db *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	conn, err := db.Connect(ctx)
	if err != nil {
		return 0, err
	}
	defer db.release(conn)

	tag, err := conn.Exec(ctx, query, args...)
	if err != nil {
		db.logQueryError(err, "failed to execute query")
		return 0, err
	}
	db.logger.Debug().
		Int64("affected", tag.RowsAffected()).
		Msg("executed query")
	return tag.RowsAffected(), nil
}

func (db *DB) Ping(ctx context.Context) error {
	conn, err := db.Connect(ctx)
	if err != nil {
		return err
	}
	defer db.release(conn)

	err = conn.Ping(ctx)
	if err != nil {
		db.logQueryError(err, "failed to ping postgres")
		return err
	}
	return nil
}

// FetchAll runs a read-only statement on a fresh connection and scans
// every row with scan. The result is never nil.
func FetchAll[T any](ctx context.Context, db *DB, scan pgx.RowToFunc[T], query string, args ...any) ([]T, error) {
	conn, err := db.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer db.release(conn)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		db.logQueryError(err, "failed to run query")
		return nil, err
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		db.logQueryError(err, "failed to collect rows")
		return nil, err
	}
	if items == nil {
		items = make([]T, 0)
	}
	db.logger.Debug().
		Int("count", len(items)).
		Msg("fetched rows")
	return items, nil
}

// FetchOne is FetchAll for statements that yield exactly one row,
// such as INSERT ... RETURNING.
func FetchOne[T any](ctx context.Context, db *DB, scan pgx.RowToFunc[T], query string, args ...any) (T, error) {
	var zero T

	conn, err := db.Connect(ctx)
	if err != nil {
		return zero, err
	}
	defer db.release(conn)

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		db.logQueryError(err, "failed to run query")
		return zero, err
	}

	item, err := pgx.CollectOneRow(rows, scan)
	if err != nil {
		db.logQueryError(err, "failed to collect row")
		return zero, err
	}
	db.logger.Debug().Msg("fetched row")
	return item, nil
}

func (db *DB) logQueryError(err error, msg string) {
	event := db.logger.Error().Err(err)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		event = event.
			Str("sqlstate", pgErr.Code).
			Bool("constraint_violation", pgerrcode.IsIntegrityConstraintViolation(pgErr.Code))
	}
	event.Msg(msg)
}
