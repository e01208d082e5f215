package service

import (
	"context"
	"time"

	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// business rules on top of the repository: validation, existence checks,
// filtering and search

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{
		repo: repo,
	}
}

// AddTask creates a Pending task. An empty priority means Medium; a zero
// dueDate means no due date.
func (s *TaskService) AddTask(ctx context.Context, description string, priority task.Priority, dueDate time.Time) (task.Task, error) {
	if err := task.ValidateDescription(description); err != nil {
		logger.Info("Service: Rejected task description", zap.Error(err))
		return task.Task{}, toBusinessError(err, uuid.Nil)
	}
	if priority == "" {
		priority = task.PriorityMedium
	}

	created, err := s.repo.Create(ctx, repository.Draft{
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Status:      task.StatusPending,
	})
	if err != nil {
		return task.Task{}, toBusinessError(err, uuid.Nil)
	}

	logger.Info("Service: Task added", zap.String("task_id", created.ID.String()), zap.String("priority", string(created.Priority)))
	return created, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.mustExist(ctx, id)
}

func (s *TaskService) CompleteTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.setStatus(ctx, id, task.StatusCompleted)
}

func (s *TaskService) UncompleteTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.setStatus(ctx, id, task.StatusPending)
}

// StartTask moves a task to InProgress.
func (s *TaskService) StartTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return s.setStatus(ctx, id, task.StatusInProgress)
}

func (s *TaskService) setStatus(ctx context.Context, id uuid.UUID, status task.Status) (task.Task, error) {
	if _, err := s.mustExist(ctx, id); err != nil {
		return task.Task{}, err
	}

	updated, err := s.repo.Update(ctx, id, task.SetStatus(status))
	if err != nil {
		return task.Task{}, toBusinessError(err, id)
	}

	logger.Info("Service: Task status changed", zap.String("task_id", id.String()), zap.String("status", string(status)))
	return updated, nil
}

// DeleteTask succeeds for unknown ids.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return toBusinessError(err, id)
	}
	logger.Info("Service: Task deleted", zap.String("task_id", id.String()))
	return nil
}

func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, upd task.Update) (task.Task, error) {
	if _, err := s.mustExist(ctx, id); err != nil {
		return task.Task{}, err
	}

	if err := upd.Validate(); err != nil {
		logger.Info("Service: Rejected task update", zap.String("task_id", id.String()), zap.Error(err))
		return task.Task{}, toBusinessError(err, id)
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return task.Task{}, toBusinessError(err, id)
	}

	logger.Info("Service: Task updated", zap.String("task_id", id.String()))
	return updated, nil
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, toBusinessError(err, uuid.Nil)
	}
	return tasks, nil
}

func (s *TaskService) FilterByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	if err := task.ValidateStatus(status); err != nil {
		return nil, toBusinessError(err, uuid.Nil)
	}
	return s.Find(ctx, ByStatus(status))
}

func (s *TaskService) FilterByPriority(ctx context.Context, priority task.Priority) ([]task.Task, error) {
	if err := task.ValidatePriority(priority); err != nil {
		return nil, toBusinessError(err, uuid.Nil)
	}
	return s.Find(ctx, ByPriority(priority))
}

// Search matches descriptions case-insensitively; "" matches every task.
func (s *TaskService) Search(ctx context.Context, query string) ([]task.Task, error) {
	return s.Find(ctx, Matching(query))
}

// Find applies every option at once, keeping the stored order.
func (s *TaskService) Find(ctx context.Context, options ...FilterOption) ([]task.Task, error) {
	var filter Filter
	for _, opt := range options {
		opt(&filter)
	}

	tasks, err := s.GetAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	res := []task.Task{}
	for _, t := range tasks {
		if filter.Match(t) {
			res = append(res, t)
		}
	}
	return res, nil
}

func (s *TaskService) mustExist(ctx context.Context, id uuid.UUID) (task.Task, error) {
	t, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return task.Task{}, toBusinessError(err, id)
	}
	if !found {
		logger.Info("Service: Task not found", zap.String("target_id", id.String()))
		return task.Task{}, NewNotFound(id)
	}
	return t, nil
}
