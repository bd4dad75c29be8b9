package app

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-task-tracker/internal/config"
)

func (a *App) MustReadEnv() {
	a.mustReadConfig(config.NewEnvReader())
}

func (a *App) mustReadConfig(reader config.Reader) {
	cfg, err := reader.Read()
	if err != nil {
		a.logger.Error().
			Err(err).
			Msg("failed to read env")
		panic(err)
	}
	a.logger.Info().
		Str("env", cfg.Env).
		Msg("read env")

	a.cfg = cfg
}
