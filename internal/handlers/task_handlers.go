package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"todoList/internal/handlers/dto"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService Service
	Checker     HealthChecker
}

func NewTaskHandler(taskService Service, checker HealthChecker) *TaskHandler {
	return &TaskHandler{
		TaskService: taskService,
		Checker:     checker,
	}
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if s.Checker != nil {
		if err := s.Checker.Ping(r.Context()); err != nil {
			logger.Error("HTTP: Storage health check failed", err)
			responseWithJSON(w, http.StatusServiceUnavailable,
				toPayload("status", "unavailable"),
				toPayload("error", err.Error()))
			return
		}
	}

	responseWithJSON(w, http.StatusOK, toPayload("status", "ok"))
}

// ListTasks accepts optional status, priority and q query parameters and
// applies them together.
func (s *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	options, err := filterFromQuery(r)
	if err != nil {
		logger.Warn("HTTP: Invalid filter",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		writeServiceError(w, err, "list_tasks")
		return
	}

	tasks, err := s.TaskService.Find(r.Context(), options...)
	if err != nil {
		writeServiceError(w, err, "list_tasks")
		return
	}

	logger.Info("HTTP_OUT: Tasks listed",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK,
		toPayload("tasks", dto.FromTaskList(tasks)),
		toPayload("count", len(tasks)))
}

func (s *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Wrong content type",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: Failed to decode JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	priority, dueDate, err := parseCreateInput(request.Priority, request.DueDate)
	if err != nil {
		writeServiceError(w, err, "create_task")
		return
	}

	created, err := s.TaskService.AddTask(r.Context(), request.Description, priority, dueDate)
	if err != nil {
		writeServiceError(w, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: Task created",
		zap.String("task_id", created.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("task", dto.FromTask(created)))
}

func (s *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	found, err := s.TaskService.GetTask(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "get_task")
		return
	}

	logger.Info("HTTP_OUT: Task fetched",
		zap.String("task_id", found.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(found)))
}

func (s *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Wrong content type",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var request dto.UpdateTaskRequest
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(&request); err != nil {
		logger.Warn("HTTP: Failed to decode JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid update parameters: "+err.Error())
		return
	}

	upd, err := request.ToUpdate()
	if err != nil {
		writeServiceError(w, err, "update_task")
		return
	}

	updated, err := s.TaskService.UpdateTask(r.Context(), id, upd)
	if err != nil {
		writeServiceError(w, err, "update_task")
		return
	}

	logger.Info("HTTP_OUT: Task updated",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(updated)))
}

func (s *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.TaskService.DeleteTask(r.Context(), id); err != nil {
		writeServiceError(w, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: Task deleted",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

func (s *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	s.changeStatus(w, r, "complete_task", s.TaskService.CompleteTask)
}

func (s *TaskHandler) UncompleteTask(w http.ResponseWriter, r *http.Request) {
	s.changeStatus(w, r, "uncomplete_task", s.TaskService.UncompleteTask)
}

func (s *TaskHandler) StartTask(w http.ResponseWriter, r *http.Request) {
	s.changeStatus(w, r, "start_task", s.TaskService.StartTask)
}

type statusChange func(context.Context, uuid.UUID) (task.Task, error)

func (s *TaskHandler) changeStatus(w http.ResponseWriter, r *http.Request, operation string, change statusChange) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	updated, err := change(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, operation)
		return
	}

	logger.Info("HTTP_OUT: Task status changed",
		zap.String("task_id", id.String()),
		zap.String("status", string(updated.Status)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("task", dto.FromTask(updated)))
}

func (s *TaskHandler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := parseID(r)
	if err != nil {
		logger.Warn("HTTP: Invalid id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "invalid id: "+err.Error())
		return uuid.Nil, false
	}
	return id, true
}

func filterFromQuery(r *http.Request) ([]service.FilterOption, error) {
	query := r.URL.Query()
	var options []service.FilterOption

	if raw := query.Get("status"); raw != "" {
		status, err := task.ParseStatus(raw)
		if err != nil {
			return nil, err
		}
		options = append(options, service.ByStatus(status))
	}
	if raw := query.Get("priority"); raw != "" {
		priority, err := task.ParsePriority(raw)
		if err != nil {
			return nil, err
		}
		options = append(options, service.ByPriority(priority))
	}
	if q := query.Get("q"); q != "" {
		options = append(options, service.Matching(q))
	}
	return options, nil
}
