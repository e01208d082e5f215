package task

import "time"

// Update lists every mutable field. ID and CreatedAt have no counterpart.
type Update struct {
	Description  *string
	Priority     *Priority
	Status       *Status
	DueDate      *time.Time
	ClearDueDate bool
}

func (u Update) IsEmpty() bool {
	return u.Description == nil && u.Priority == nil && u.Status == nil && u.DueDate == nil && !u.ClearDueDate
}

// Validate checks only the fields that are present.
func (u Update) Validate() error {
	if u.Description != nil {
		if err := ValidateDescription(*u.Description); err != nil {
			return err
		}
	}
	if u.Priority != nil {
		if err := ValidatePriority(*u.Priority); err != nil {
			return err
		}
	}
	if u.Status != nil {
		if err := ValidateStatus(*u.Status); err != nil {
			return err
		}
	}
	if u.DueDate != nil {
		if err := ValidateDueDate(*u.DueDate); err != nil {
			return err
		}
	}
	return nil
}

func SetDescription(description string) Update {
	return Update{Description: &description}
}

func SetPriority(priority Priority) Update {
	return Update{Priority: &priority}
}

func SetStatus(status Status) Update {
	return Update{Status: &status}
}

func SetDueDate(dueDate time.Time) Update {
	return Update{DueDate: &dueDate}
}
