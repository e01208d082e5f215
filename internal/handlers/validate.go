package handlers

import (
	"errors"
	"mime"
	"net/http"
	"strings"
	"time"

	"todoList/internal/models/task"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var errNilID = errors.New("id cannot be empty")

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

// parseCreateInput leaves an empty priority empty so the service applies
// its default.
func parseCreateInput(rawPriority, rawDueDate string) (task.Priority, time.Time, error) {
	var priority task.Priority
	if strings.TrimSpace(rawPriority) != "" {
		p, err := task.ParsePriority(rawPriority)
		if err != nil {
			return "", time.Time{}, err
		}
		priority = p
	}

	dueDate, err := task.ParseDueDate(rawDueDate)
	if err != nil {
		return "", time.Time{}, err
	}
	return priority, dueDate, nil
}

func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, err
	}
	if id == uuid.Nil {
		return uuid.Nil, errNilID
	}
	return id, nil
}
