package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/services"
)

type Handler interface {
	HandleRequestID(c *gin.Context)
	HandleAccessLog(c *gin.Context)
	HandleNoRoute(c *gin.Context)
	HandleNoMethod(c *gin.Context)

	HandleHealth(c *gin.Context)

	HandleCreateTask(c *gin.Context)
	HandleGetTasks(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

// Pinger reports whether the database can be reached.
type Pinger interface {
	Ping(ctx context.Context) error
}

type handlerImpl struct {
	logger zerolog.Logger
	env    string
	tasks  services.TaskService
	db     Pinger
}

func New(
	logger zerolog.Logger,
	env string,
	taskService services.TaskService,
	db Pinger,
) Handler {
	return &handlerImpl{
		logger: logger,
		env:    env,
		tasks:  taskService,
		db:     db,
	}
}
