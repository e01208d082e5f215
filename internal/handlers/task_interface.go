package handlers

import (
	"context"
	"time"

	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/google/uuid"
)

type Service interface {
	AddTask(context.Context, string, task.Priority, time.Time) (task.Task, error)
	GetTask(context.Context, uuid.UUID) (task.Task, error)
	CompleteTask(context.Context, uuid.UUID) (task.Task, error)
	UncompleteTask(context.Context, uuid.UUID) (task.Task, error)
	StartTask(context.Context, uuid.UUID) (task.Task, error)
	UpdateTask(context.Context, uuid.UUID, task.Update) (task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
	GetAllTasks(context.Context) ([]task.Task, error)
	Find(context.Context, ...service.FilterOption) ([]task.Task, error)
}

// HealthChecker is implemented by storage backends with a remote connection.
type HealthChecker interface {
	Ping(context.Context) error
}

var _ Service = (*service.TaskService)(nil)
