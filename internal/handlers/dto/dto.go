package dto

import (
	"time"

	"todoList/internal/models/task"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

// UpdateTaskRequest carries only the fields to change. An empty due_date
// string removes the due date.
type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r UpdateTaskRequest) ToUpdate() (task.Update, error) {
	var upd task.Update
	upd.Description = r.Description

	if r.Priority != nil {
		p, err := task.ParsePriority(*r.Priority)
		if err != nil {
			return task.Update{}, err
		}
		upd.Priority = &p
	}

	if r.Status != nil {
		s, err := task.ParseStatus(*r.Status)
		if err != nil {
			return task.Update{}, err
		}
		upd.Status = &s
	}

	if r.DueDate != nil {
		due, err := task.ParseDueDate(*r.DueDate)
		if err != nil {
			return task.Update{}, err
		}
		if due.IsZero() {
			upd.ClearDueDate = true
		} else {
			upd.DueDate = &due
		}
	}
	return upd, nil
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromTask(t task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.HasDueDate() {
		due := t.DueDate
		resp.DueDate = &due
	}
	return resp
}

func FromTaskList(tasks []task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
