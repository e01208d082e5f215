package service

import (
	"strings"

	"todoList/internal/models/task"
)

// Filter narrows a task listing. Zero fields match everything.
type Filter struct {
	Status   task.Status
	Priority task.Priority
	Query    string
}

type FilterOption func(*Filter)

func ByStatus(status task.Status) FilterOption {
	return func(f *Filter) {
		f.Status = status
	}
}

func ByPriority(priority task.Priority) FilterOption {
	return func(f *Filter) {
		f.Priority = priority
	}
}

// Matching does a case-insensitive substring search on the description.
func Matching(query string) FilterOption {
	return func(f *Filter) {
		f.Query = query
	}
}

func (f Filter) Match(t task.Task) bool {
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Priority != "" && t.Priority != f.Priority {
		return false
	}
	if f.Query != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(f.Query)) {
		return false
	}
	return true
}
