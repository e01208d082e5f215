package task

import (
	"time"

	"github.com/google/uuid"
)

type TaskOption func(*Task)

func WithPriority(priority Priority) TaskOption {
	if priority == "" {
		return nil
	}
	return func(task *Task) {
		task.Priority = priority
	}
}

func WithStatus(status Status) TaskOption {
	if status == "" {
		return nil
	}
	return func(task *Task) {
		task.Status = status
	}
}

func WithDueDate(dueDate time.Time) TaskOption {
	if dueDate.IsZero() {
		return nil
	}
	return func(task *Task) {
		task.DueDate = dueDate.UTC()
	}
}

// options below rehydrate a stored task

func WithID(id uuid.UUID) TaskOption {
	return func(task *Task) {
		task.ID = id
	}
}

func WithTimestamps(createdAt, updatedAt time.Time) TaskOption {
	return func(task *Task) {
		if !createdAt.IsZero() {
			task.CreatedAt = createdAt.UTC()
		}
		if !updatedAt.IsZero() {
			task.UpdatedAt = updatedAt.UTC()
		}
	}
}
