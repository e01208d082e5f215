package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TasksKey is the storage key holding the whole collection.
const TasksKey = "tasks"

// Draft is the caller-supplied part of a new task.
type Draft struct {
	Description string
	Priority    task.Priority
	DueDate     time.Time
	Status      task.Status
}

type TaskRepository struct {
	storage storage.Storage
	mtx     *sync.Mutex
	now     func() time.Time
}

type Option func(*TaskRepository)

func WithClock(now func() time.Time) Option {
	return func(r *TaskRepository) {
		r.now = now
	}
}

func NewTaskRepository(s storage.Storage, options ...Option) *TaskRepository {
	r := &TaskRepository{
		storage: s,
		mtx:     &sync.Mutex{},
		now:     time.Now,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// load reads the collection. Backend failures are returned; anything that
// cannot be decoded into valid tasks yields an empty collection.
func (r *TaskRepository) load(ctx context.Context) ([]task.Task, error) {
	var records []record
	found, err := storage.Get(ctx, r.storage, TasksKey, &records)
	if err != nil {
		if !found {
			return nil, err
		}
		logger.Warn("Repository: Stored tasks are malformed, treating as empty", zap.Error(err))
		return []task.Task{}, nil
	}
	if !found {
		return []task.Task{}, nil
	}

	tasks := make([]task.Task, 0, len(records))
	for _, rec := range records {
		t, err := rec.toTask()
		if err != nil {
			logger.Warn("Repository: Stored task failed to rehydrate, treating collection as empty", zap.Error(err))
			return []task.Task{}, nil
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *TaskRepository) persist(ctx context.Context, tasks []task.Task) error {
	if err := storage.Put(ctx, r.storage, TasksKey, toRecords(tasks)); err != nil {
		logger.Error("Repository: Failed to persist tasks", err, zap.Int("count", len(tasks)))
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (r *TaskRepository) Create(ctx context.Context, draft Draft) (task.Task, error) {
	created, err := task.New(draft.Description,
		task.WithPriority(draft.Priority),
		task.WithDueDate(draft.DueDate),
		task.WithStatus(draft.Status),
	)
	if err != nil {
		return task.Task{}, err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return task.Task{}, fmt.Errorf("create task: %w", err)
	}

	tasks = append(tasks, created)
	if err := r.persist(ctx, tasks); err != nil {
		return task.Task{}, err
	}

	logger.Debug("Repository: Task created", zap.String("task_id", created.ID.String()))
	return created, nil
}

// GetByID reports found=false for an unknown id; err is only set when the
// backend fails.
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (task.Task, bool, error) {
	tasks, err := r.GetAll(ctx)
	if err != nil {
		return task.Task{}, false, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, true, nil
		}
	}
	return task.Task{}, false, nil
}

func (r *TaskRepository) GetAll(ctx context.Context) ([]task.Task, error) {
	tasks, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uuid.UUID, upd task.Update) (task.Task, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return task.Task{}, fmt.Errorf("update task: %w", err)
	}

	idx := -1
	for i, t := range tasks {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return task.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}

	merged, err := tasks[idx].Apply(upd, r.now())
	if err != nil {
		return task.Task{}, err
	}

	tasks[idx] = merged
	if err := r.persist(ctx, tasks); err != nil {
		return task.Task{}, err
	}

	logger.Debug("Repository: Task updated", zap.String("task_id", id.String()))
	return merged, nil
}

// Delete is idempotent.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	tasks, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := r.persist(ctx, kept); err != nil {
		return err
	}
	logger.Debug("Repository: Task deleted", zap.String("task_id", id.String()), zap.Int("removed", len(tasks)-len(kept)))
	return nil
}

func (r *TaskRepository) Clear(ctx context.Context) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	return r.persist(ctx, []task.Task{})
}
