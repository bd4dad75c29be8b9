package services

import (
	"context"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage/postgres"
)

// ErrConnectionFailed is wrapped by every error caused by the database
// being unreachable, as opposed to a failing statement.
var ErrConnectionFailed = postgres.ErrConnectionFailed

type TaskService interface {
	// CreateTask inserts a task and returns its database-assigned ID.
	// An empty status is replaced with models.StatusPending.
	CreateTask(ctx context.Context, params CreateTaskParams) (int64, error)

	// ListTasks returns every task ordered by ID. The result is
	// never nil.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// UpdateTask overwrites the title, description and status of the
	// task with the given ID. An empty status is replaced with
	// models.StatusPending.
	//
	// Updating a task that does not exist is not an error.
	UpdateTask(ctx context.Context, params UpdateTaskParams) error

	// DeleteTask deletes the task with the given ID. Deleting a task
	// that does not exist is not an error.
	DeleteTask(ctx context.Context, taskID int64) error
}

type CreateTaskParams struct {
	Title       string
	Description string
	Status      string
}

type UpdateTaskParams struct {
	ID          int64
	Title       string
	Description string
	Status      string
}
