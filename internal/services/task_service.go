package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage/postgres"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	db     *postgres.DB
}

func NewTaskService(
	logger zerolog.Logger,
	db *postgres.DB,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		db:     db,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (int64, error) {
	task := models.Task{
		Title:       params.Title,
		Description: params.Description,
		Status:      statusOrDefault(params.Status),
	}

	const insertTaskQuery = `
INSERT INTO tasks (title,
                   description,
                   status)
VALUES ($1, $2, $3)
RETURNING id
`
	taskID, err := postgres.FetchOne(
		ctx,
		s.db,
		pgx.RowTo[int64],
		insertTaskQuery,
		task.Title,
		task.Description,
		task.Status,
	)
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Str("status", task.Status).
		Msg("created task")
	return taskID, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]models.Task, error) {
	const selectTasksQuery = `
SELECT id,
       title,
       description,
       status,
       created_at
FROM tasks
ORDER BY id
`
	tasks, err := postgres.FetchAll(
		ctx,
		s.db,
		pgx.RowToStructByPos[models.Task],
		selectTasksQuery,
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Msg("fetched tasks")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) error {
	task := models.Task{
		ID:          params.ID,
		Title:       params.Title,
		Description: params.Description,
		Status:      statusOrDefault(params.Status),
	}

	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    description = $2,
    status = $3
WHERE id = $4::bigint
`
	affected, err := s.db.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		task.Status,
		task.ID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn().
			Int64("task_id", task.ID).
			Msg("no task to update")
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Int64("affected", affected).
		Msg("updated task")
	return nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, taskID int64) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1::bigint
`
	affected, err := s.db.Exec(
		ctx,
		deleteTaskQuery,
		taskID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		s.logger.Warn().
			Int64("task_id", taskID).
			Msg("no task to delete")
	}

	s.logger.Info().
		Int64("task_id", taskID).
		Int64("affected", affected).
		Msg("deleted task")
	return nil
}

func statusOrDefault(status string) string {
	if status == "" {
		return models.StatusPending
	}
	return status
}
