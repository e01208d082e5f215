package service

import (
	"context"

	"todoList/internal/models/task"
	"todoList/internal/repository"

	"github.com/google/uuid"
)

type TaskRepository interface {
	Create(context.Context, repository.Draft) (task.Task, error)
	GetByID(context.Context, uuid.UUID) (task.Task, bool, error)
	GetAll(context.Context) ([]task.Task, error)
	Update(context.Context, uuid.UUID, task.Update) (task.Task, error)
	Delete(context.Context, uuid.UUID) error
}

var _ TaskRepository = (*repository.TaskRepository)(nil)
