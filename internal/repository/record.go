package repository

import (
	"errors"
	"fmt"
	"time"

	"todoList/internal/models/task"

	"github.com/google/uuid"
)

// record is the stored shape of a task. Dates travel as RFC 3339 text and
// are turned back into time.Time by toTask.
type record struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func fromTask(t task.Task) record {
	r := record{
		ID:          t.ID.String(),
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.HasDueDate() {
		due := t.DueDate
		r.DueDate = &due
	}
	return r
}

func (r record) toTask() (task.Task, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return task.Task{}, fmt.Errorf("record id %q: %w", r.ID, err)
	}
	if id == uuid.Nil {
		return task.Task{}, errors.New("record id is the nil uuid")
	}

	options := []task.TaskOption{
		task.WithID(id),
		task.WithTimestamps(r.CreatedAt, r.UpdatedAt),
		task.WithStatus(task.Status(r.Status)),
		task.WithPriority(task.Priority(r.Priority)),
	}
	if r.DueDate != nil {
		options = append(options, task.WithDueDate(*r.DueDate))
	}

	t, err := task.New(r.Description, options...)
	if err != nil {
		return task.Task{}, fmt.Errorf("record %s: %w", r.ID, err)
	}
	return t, nil
}

func toRecords(tasks []task.Task) []record {
	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = fromTask(t)
	}
	return records
}
