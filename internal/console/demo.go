package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todoList/internal/logger"
	"todoList/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RunDemo plays the fixed walkthrough: add four tasks, list, complete one,
// filter twice by status and once by priority, search, update, list,
// delete, list. A failed step is rendered and the walkthrough carries on;
// every failure is returned joined once the script ends.
func (c *Console) RunDemo(ctx context.Context) error {
	start := time.Now()
	logger.Info("CLI: Demo started")
	c.printf("🚀 Todo List Application Started\n\n")

	var errs []error

	c.printf("📝 Adding tasks...\n")
	seed := []struct {
		description string
		priority    task.Priority
	}{
		{"Complete project documentation", task.PriorityHigh},
		{"Review pull requests", task.PriorityMedium},
		{"Update dependencies", task.PriorityLow},
		{"Write unit tests for API", task.PriorityHigh},
	}
	added := make([]task.Task, len(seed))
	for i, s := range seed {
		t, err := c.AddTask(ctx, s.description, s.priority, time.Time{})
		if err != nil {
			errs = append(errs, fmt.Errorf("add %q: %w", s.description, err))
			continue
		}
		added[i] = t
	}

	// seeded runs op against the i-th seed task, or fails the step when
	// that task never made it into storage.
	seeded := func(i int, action string, op func(uuid.UUID) error) func() error {
		return func() error {
			if added[i].ID == uuid.Nil {
				return c.fail(action, fmt.Errorf("task %q was not added", seed[i].description))
			}
			return op(added[i].ID)
		}
	}

	steps := []struct {
		banner string
		run    func() error
	}{
		{"\n📋 All Tasks:\n", func() error { return c.DisplayAllTasks(ctx) }},
		{"✅ Marking task as complete...\n", seeded(0, "completing task", func(id uuid.UUID) error {
			return c.CompleteTask(ctx, id)
		})},
		{"\n🔍 Filtering by status (Completed):\n", func() error { return c.FilterByStatus(ctx, task.StatusCompleted) }},
		{"🔍 Filtering by status (Pending):\n", func() error { return c.FilterByStatus(ctx, task.StatusPending) }},
		{"🔍 Filtering by priority (High):\n", func() error { return c.FilterByPriority(ctx, task.PriorityHigh) }},
		{"🔍 Searching for \"tests\":\n", func() error { return c.Search(ctx, "tests") }},
		{"✏️ Updating task priority...\n", seeded(2, "updating task", func(id uuid.UUID) error {
			return c.UpdateTask(ctx, id, task.SetPriority(task.PriorityHigh))
		})},
		{"\n📋 All Tasks (After Updates):\n", func() error { return c.DisplayAllTasks(ctx) }},
		{"🗑️ Deleting a task...\n", seeded(1, "deleting task", func(id uuid.UUID) error {
			return c.DeleteTask(ctx, id)
		})},
		{"\n📋 Final Task List:\n", func() error { return c.DisplayAllTasks(ctx) }},
	}

	for _, step := range steps {
		c.printf("%s", step.banner)
		if err := step.run(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		c.printf("⚠️ Demo finished with %d error(s)\n", len(errs))
		logger.Warn("CLI: Demo finished with errors", zap.Int("errors", len(errs)), zap.Duration("ms", time.Since(start)))
		return errors.Join(errs...)
	}

	c.printf("✨ Demo completed successfully!\n")
	logger.Info("CLI: Demo finished", zap.Duration("ms", time.Since(start)))
	return nil
}
