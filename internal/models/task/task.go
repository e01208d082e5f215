package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is a value type: copies never share state with the repository.
type Task struct {
	ID          uuid.UUID
	Description string
	Status      Status
	Priority    Priority
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Status string
type Priority string

const StatusPending Status = "Pending"
const StatusInProgress Status = "InProgress"
const StatusCompleted Status = "Completed"

const PriorityHigh Priority = "High"
const PriorityMedium Priority = "Medium"
const PriorityLow Priority = "Low"

const MaxDescriptionLength = 500

var Statuses = []Status{StatusPending, StatusInProgress, StatusCompleted}
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// New builds a validated task. Without rehydration options it gets a fresh
// ID, status Pending, priority Medium and both timestamps set to now.
func New(description string, options ...TaskOption) (Task, error) {
	now := time.Now().UTC()
	t := Task{
		Description: description,
		Status:      StatusPending,
		Priority:    PriorityMedium,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, opt := range options {
		if opt != nil {
			opt(&t)
		}
	}

	if err := t.Validate(); err != nil {
		return Task{}, err
	}

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t, nil
}

func (t Task) Validate() error {
	if err := ValidateDescription(t.Description); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	if err := ValidateDueDate(t.DueDate); err != nil {
		return err
	}
	return ValidateStatus(t.Status)
}

func (t Task) HasDueDate() bool {
	return !t.DueDate.IsZero()
}

func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Apply returns a copy of t with the update merged in. ID and CreatedAt are
// kept; UpdatedAt is always set to now.
func (t Task) Apply(upd Update, now time.Time) (Task, error) {
	merged := t
	if upd.Description != nil {
		merged.Description = *upd.Description
	}
	if upd.Priority != nil {
		merged.Priority = *upd.Priority
	}
	if upd.Status != nil {
		merged.Status = *upd.Status
	}
	if upd.ClearDueDate {
		merged.DueDate = time.Time{}
	} else if upd.DueDate != nil {
		merged.DueDate = *upd.DueDate
	}

	if err := merged.Validate(); err != nil {
		return Task{}, err
	}

	merged.ID = t.ID
	merged.CreatedAt = t.CreatedAt
	merged.UpdatedAt = now.UTC()
	return merged, nil
}
