package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/storage/postgres"
)

const startupPingTimeout = 5 * time.Second

// InitPostgres prepares the data access layer. Connections are opened per
// request, so an unreachable database at startup is only reported.
func (a *App) InitPostgres() {
	cfg := a.cfg.Postgres

	var opts []postgres.Option
	if a.cfg.Env == config.EnvLocal {
		opts = append(opts, postgres.WithQueryTracer(
			postgres.NewQueryTracer(a.logger.Level(zerolog.GlobalLevel())),
		))
	}
	a.db = postgres.New(a.logger, cfg, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), startupPingTimeout)
	defer cancel()

	err := a.db.Ping(ctx)
	if err != nil {
		a.logger.Warn().
			Err(err).
			Str("host", cfg.Host).
			Int("port", cfg.Port).
			Msg("postgres is unreachable at startup")
		return
	}
	a.logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("reached postgres")
}
