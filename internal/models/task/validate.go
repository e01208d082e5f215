package task

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrValidation = errors.New("validation failed")

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return newValidationError("description", "task description cannot be empty or contain only whitespace")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return newValidationError("description", "task description cannot exceed %d characters", MaxDescriptionLength)
	}
	return nil
}

func ValidatePriority(priority Priority) error {
	for _, p := range Priorities {
		if p == priority {
			return nil
		}
	}
	return newValidationError("priority", "invalid priority %q, must be one of: %s", priority, joinValues(Priorities))
}

func ValidateStatus(status Status) error {
	for _, s := range Statuses {
		if s == status {
			return nil
		}
	}
	return newValidationError("status", "invalid status %q, must be one of: %s", status, joinValues(Statuses))
}

// ValidateDueDate accepts the zero time as "no due date". Year 1 is reserved
// for that zero value, and years past 9999 cannot be stored as RFC 3339.
func ValidateDueDate(dueDate time.Time) error {
	if dueDate.IsZero() {
		return nil
	}
	if y := dueDate.Year(); y < 2 || y > 9999 {
		return newValidationError("due_date", "invalid due date")
	}
	return nil
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.TrimSpace(s))
	if err := ValidatePriority(p); err != nil {
		return "", err
	}
	return p, nil
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if err := ValidateStatus(st); err != nil {
		return "", err
	}
	return st, nil
}

var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04", // <input type="datetime-local">
	time.DateOnly,
}

// ParseDueDate returns the zero time for an empty string.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if err := ValidateDueDate(t); err != nil {
				return time.Time{}, err
			}
			return t.UTC(), nil
		}
	}
	return time.Time{}, newValidationError("due_date", "invalid due date")
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
