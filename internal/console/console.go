// Package console renders tasks as plain text and runs the scripted demo.
package console

import (
	"context"
	"fmt"
	"io"
	"time"

	"todoList/internal/logger"
	"todoList/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskService interface {
	AddTask(ctx context.Context, description string, priority task.Priority, dueDate time.Time) (task.Task, error)
	CompleteTask(ctx context.Context, id uuid.UUID) (task.Task, error)
	UncompleteTask(ctx context.Context, id uuid.UUID) (task.Task, error)
	StartTask(ctx context.Context, id uuid.UUID) (task.Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
	UpdateTask(ctx context.Context, id uuid.UUID, upd task.Update) (task.Task, error)
	GetAllTasks(ctx context.Context) ([]task.Task, error)
	FilterByStatus(ctx context.Context, status task.Status) ([]task.Task, error)
	FilterByPriority(ctx context.Context, priority task.Priority) ([]task.Task, error)
	Search(ctx context.Context, query string) ([]task.Task, error)
}

const dueDateLayout = "2006-01-02"

type Console struct {
	service TaskService
	out     io.Writer
}

func New(service TaskService, out io.Writer) *Console {
	return &Console{service: service, out: out}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) fail(action string, err error) error {
	c.printf("✗ Error %s: %v\n", action, err)
	logger.Warn("CLI: Operation failed", zap.String("action", action), zap.Error(err))
	return err
}

func Glyph(status task.Status) string {
	switch status {
	case task.StatusCompleted:
		return "✓"
	case task.StatusInProgress:
		return "⟳"
	default:
		return "○"
	}
}

func (c *Console) displayTask(t task.Task, index int) {
	due := ""
	if t.HasDueDate() {
		due = fmt.Sprintf(" (Due: %s)", t.DueDate.Format(dueDateLayout))
	}
	c.printf("%d. [%s] %s [%s]%s\n", index, Glyph(t.Status), t.Description, t.Priority, due)
	c.printf("   ID: %s\n", t.ID)
}

func (c *Console) displayList(title string, tasks []task.Task) {
	c.printf("\n=== %s ===\n", title)
	for i, t := range tasks {
		c.displayTask(t, i+1)
	}
	c.printf("\n")
}

func (c *Console) DisplayAllTasks(ctx context.Context) error {
	tasks, err := c.service.GetAllTasks(ctx)
	if err != nil {
		return c.fail("listing tasks", err)
	}
	if len(tasks) == 0 {
		c.printf("No tasks found.\n")
		return nil
	}
	c.displayList("All Tasks", tasks)
	return nil
}

func (c *Console) FilterByStatus(ctx context.Context, status task.Status) error {
	tasks, err := c.service.FilterByStatus(ctx, status)
	if err != nil {
		return c.fail("filtering tasks", err)
	}
	if len(tasks) == 0 {
		c.printf("No tasks with status %q.\n", status)
		return nil
	}
	c.displayList("Tasks with status: "+string(status), tasks)
	return nil
}

func (c *Console) FilterByPriority(ctx context.Context, priority task.Priority) error {
	tasks, err := c.service.FilterByPriority(ctx, priority)
	if err != nil {
		return c.fail("filtering tasks", err)
	}
	if len(tasks) == 0 {
		c.printf("No tasks with priority %q.\n", priority)
		return nil
	}
	c.displayList("Tasks with priority: "+string(priority), tasks)
	return nil
}

func (c *Console) Search(ctx context.Context, query string) error {
	tasks, err := c.service.Search(ctx, query)
	if err != nil {
		return c.fail("searching tasks", err)
	}
	if len(tasks) == 0 {
		c.printf("No tasks found matching %q.\n", query)
		return nil
	}
	c.displayList(fmt.Sprintf("Search results for %q", query), tasks)
	return nil
}

func (c *Console) AddTask(ctx context.Context, description string, priority task.Priority, dueDate time.Time) (task.Task, error) {
	t, err := c.service.AddTask(ctx, description, priority, dueDate)
	if err != nil {
		return task.Task{}, c.fail("adding task", err)
	}
	c.printf("✓ Task added: %q (ID: %s)\n", t.Description, t.ID)
	return t, nil
}

func (c *Console) CompleteTask(ctx context.Context, id uuid.UUID) error {
	t, err := c.service.CompleteTask(ctx, id)
	if err != nil {
		return c.fail("completing task", err)
	}
	c.printf("✓ Task completed: %q\n", t.Description)
	return nil
}

func (c *Console) UncompleteTask(ctx context.Context, id uuid.UUID) error {
	t, err := c.service.UncompleteTask(ctx, id)
	if err != nil {
		return c.fail("uncompleting task", err)
	}
	c.printf("✓ Task marked as pending: %q\n", t.Description)
	return nil
}

func (c *Console) StartTask(ctx context.Context, id uuid.UUID) error {
	t, err := c.service.StartTask(ctx, id)
	if err != nil {
		return c.fail("starting task", err)
	}
	c.printf("✓ Task in progress: %q\n", t.Description)
	return nil
}

func (c *Console) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := c.service.DeleteTask(ctx, id); err != nil {
		return c.fail("deleting task", err)
	}
	c.printf("✓ Task deleted (ID: %s)\n", id)
	return nil
}

func (c *Console) UpdateTask(ctx context.Context, id uuid.UUID, upd task.Update) error {
	t, err := c.service.UpdateTask(ctx, id, upd)
	if err != nil {
		return c.fail("updating task", err)
	}
	c.printf("✓ Task updated: %q\n", t.Description)
	return nil
}
