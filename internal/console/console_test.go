package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"todoList/internal/console"
	"todoList/internal/models/task"
	"todoList/internal/repository"
	"todoList/internal/service"
	"todoList/internal/storage/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole() (*console.Console, *service.TaskService, *bytes.Buffer) {
	svc := service.NewTaskService(repository.NewTaskRepository(memory.New()))
	out := &bytes.Buffer{}
	return console.New(svc, out), svc, out
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "✓", console.Glyph(task.StatusCompleted))
	assert.Equal(t, "⟳", console.Glyph(task.StatusInProgress))
	assert.Equal(t, "○", console.Glyph(task.StatusPending))
}

func TestConsole_DisplayAllTasks(t *testing.T) {
	ctx := context.Background()
	c, svc, out := newConsole()

	require.NoError(t, c.DisplayAllTasks(ctx))
	assert.Contains(t, out.String(), "No tasks found.")
	out.Reset()

	due := time.Date(2030, 3, 4, 10, 0, 0, 0, time.UTC)
	added, err := svc.AddTask(ctx, "Pay bills", task.PriorityHigh, due)
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "Walk dog", task.PriorityLow, time.Time{})
	require.NoError(t, err)
	_, err = svc.CompleteTask(ctx, added.ID)
	require.NoError(t, err)

	require.NoError(t, c.DisplayAllTasks(ctx))
	text := out.String()
	assert.Contains(t, text, "=== All Tasks ===")
	assert.Contains(t, text, "1. [✓] Pay bills [High] (Due: 2030-03-04)")
	assert.Contains(t, text, "   ID: "+added.ID.String())
	assert.Contains(t, text, "2. [○] Walk dog [Low]\n")
}

func TestConsole_EmptyResults(t *testing.T) {
	ctx := context.Background()
	c, _, out := newConsole()

	require.NoError(t, c.FilterByStatus(ctx, task.StatusCompleted))
	require.NoError(t, c.FilterByPriority(ctx, task.PriorityHigh))
	require.NoError(t, c.Search(ctx, "nothing"))

	text := out.String()
	assert.Contains(t, text, `No tasks with status "Completed".`)
	assert.Contains(t, text, `No tasks with priority "High".`)
	assert.Contains(t, text, `No tasks found matching "nothing".`)
}

func TestConsole_ErrorsAreRendered(t *testing.T) {
	ctx := context.Background()
	c, _, out := newConsole()
	missing := uuid.New()

	err := c.CompleteTask(ctx, missing)
	require.Error(t, err)
	assert.True(t, service.IsNotFound(err))
	assert.Contains(t, out.String(), "✗ Error completing task:")
	assert.Contains(t, out.String(), missing.String())

	_, err = c.AddTask(ctx, "   ", task.PriorityMedium, time.Time{})
	require.Error(t, err)
	assert.True(t, service.IsValidation(err))
	assert.Contains(t, out.String(), "✗ Error adding task:")

	err = c.UpdateTask(ctx, missing, task.SetPriority(task.PriorityLow))
	require.Error(t, err)
	assert.Contains(t, out.String(), "✗ Error updating task:")

	// deleting an unknown id is not an error
	require.NoError(t, c.DeleteTask(ctx, missing))
}

func TestConsole_StatusMessages(t *testing.T) {
	ctx := context.Background()
	c, _, out := newConsole()

	added, err := c.AddTask(ctx, "Cycle", task.PriorityMedium, time.Time{})
	require.NoError(t, err)
	require.NoError(t, c.StartTask(ctx, added.ID))
	require.NoError(t, c.CompleteTask(ctx, added.ID))
	require.NoError(t, c.UncompleteTask(ctx, added.ID))

	text := out.String()
	assert.Contains(t, text, `✓ Task added: "Cycle" (ID: `+added.ID.String()+`)`)
	assert.Contains(t, text, `✓ Task in progress: "Cycle"`)
	assert.Contains(t, text, `✓ Task completed: "Cycle"`)
	assert.Contains(t, text, `✓ Task marked as pending: "Cycle"`)
}

func TestConsole_RunDemo(t *testing.T) {
	ctx := context.Background()
	c, svc, out := newConsole()

	require.NoError(t, c.RunDemo(ctx))
	text := out.String()

	assert.Contains(t, text, "🚀 Todo List Application Started")
	assert.Contains(t, text, "=== Tasks with status: Completed ===")
	assert.Contains(t, text, "1. [✓] Complete project documentation [High]")
	assert.Contains(t, text, "=== Tasks with priority: High ===")
	assert.Contains(t, text, `=== Search results for "tests" ===`)
	assert.Contains(t, text, "✨ Demo completed successfully!")

	final := text[strings.LastIndex(text, "Final Task List"):]
	assert.NotContains(t, final, "Review pull requests")
	assert.Contains(t, final, "Update dependencies [High]")

	tasks, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, task.StatusCompleted, tasks[0].Status)
	assert.Equal(t, task.PriorityHigh, tasks[1].Priority)
}

// flakyService fails CompleteTask and the add of one description, and
// delegates everything else to a real service.
type flakyService struct {
	*service.TaskService
	rejectAdd string
}

func (f *flakyService) AddTask(ctx context.Context, description string, priority task.Priority, dueDate time.Time) (task.Task, error) {
	if description == f.rejectAdd {
		return task.Task{}, service.NewStorageError(errors.New("write timeout"))
	}
	return f.TaskService.AddTask(ctx, description, priority, dueDate)
}

func (f *flakyService) CompleteTask(ctx context.Context, id uuid.UUID) (task.Task, error) {
	return task.Task{}, service.NewStorageError(errors.New("write timeout"))
}

func TestConsole_RunDemoContinuesAfterFailures(t *testing.T) {
	ctx := context.Background()
	svc := &flakyService{
		TaskService: service.NewTaskService(repository.NewTaskRepository(memory.New())),
		rejectAdd:   "Review pull requests",
	}
	out := &bytes.Buffer{}

	err := console.New(svc, out).RunDemo(ctx)
	require.Error(t, err)
	var busErr *service.BusinessError
	require.ErrorAs(t, err, &busErr)
	assert.Equal(t, service.CodeStorage, busErr.Code)
	assert.ErrorContains(t, err, `add "Review pull requests"`)
	assert.ErrorContains(t, err, `task "Review pull requests" was not added`)

	text := out.String()
	assert.Contains(t, text, "✗ Error adding task:")
	assert.Contains(t, text, "✗ Error completing task:")
	assert.Contains(t, text, "✗ Error deleting task:")
	assert.Contains(t, text, "⚠️ Demo finished with 3 error(s)")
	assert.NotContains(t, text, "✨ Demo completed successfully!")

	final := text[strings.LastIndex(text, "Final Task List"):]
	assert.Contains(t, final, "Complete project documentation")
	assert.Contains(t, final, "Update dependencies [High]")
	assert.NotContains(t, final, "✓")
}
