package v1

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/services"
)

// fakeTaskService is an in-memory services.TaskService. When err is set
// every operation fails with it.
type fakeTaskService struct {
	mu     sync.Mutex
	nextID int64
	tasks  []models.Task
	err    error
}

func newFakeTaskService() *fakeTaskService {
	return &fakeTaskService{nextID: 1}
}

func (f *fakeTaskService) addTask(title, description, status string) models.Task {
	f.mu.Lock()
	defer f.mu.Unlock()

	task := models.Task{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task
}

func (f *fakeTaskService) CreateTask(_ context.Context, params services.CreateTaskParams) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}

	status := params.Status
	if status == "" {
		status = models.StatusPending
	}
	return f.addTask(params.Title, params.Description, status).ID, nil
}

func (f *fakeTaskService) ListTasks(context.Context) ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Task{}, f.tasks...), nil
}

func (f *fakeTaskService) UpdateTask(_ context.Context, params services.UpdateTaskParams) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	status := params.Status
	if status == "" {
		status = models.StatusPending
	}
	for i := range f.tasks {
		if f.tasks[i].ID == params.ID {
			f.tasks[i].Title = params.Title
			f.tasks[i].Description = params.Description
			f.tasks[i].Status = status
		}
	}
	return nil
}

func (f *fakeTaskService) DeleteTask(_ context.Context, taskID int64) error {
	if f.err != nil {
		return f.err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.tasks = slices.DeleteFunc(f.tasks, func(task models.Task) bool {
		return task.ID == taskID
	})
	return nil
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}
