package app

import (
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/storage/postgres"
)

// App carries the state shared by the startup steps. The steps are meant
// to be called in order: logger, env, application logger, postgres, http.
type App struct {
	logger zerolog.Logger
	cfg    *config.Config
	db     *postgres.DB
}

func New() *App {
	return &App{}
}
