package service_test

import (
	"context"
	"testing"
	"time"

	"todoList/internal/models/task"
	"todoList/internal/repository"
	"todoList/internal/service"
	"todoList/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noDue time.Time

func newService() (*service.TaskService, *repository.TaskRepository) {
	repo := repository.NewTaskRepository(memory.New())
	return service.NewTaskService(repo), repo
}

func TestScenario_BuyMilk(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()

	added, err := svc.AddTask(ctx, "Buy milk", task.PriorityLow, noDue)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, added.Status)
	assert.Equal(t, task.PriorityLow, added.Priority)

	completed, err := svc.CompleteTask(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, completed.Status)

	done, err := svc.FilterByStatus(ctx, task.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, added.ID, done[0].ID)

	require.NoError(t, svc.DeleteTask(ctx, added.ID))

	_, found, err := repo.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestScenario_CompleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, repo := newService()

	added, err := svc.AddTask(ctx, "Round trip", "", noDue)
	require.NoError(t, err)

	_, err = svc.CompleteTask(ctx, added.ID)
	require.NoError(t, err)
	stored, _, err := repo.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, stored.Status)

	_, err = svc.UncompleteTask(ctx, added.ID)
	require.NoError(t, err)
	stored, _, err = repo.GetByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.Status, stored.Status)
}

func TestScenario_FiltersDoNotModifyStorage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	for _, p := range []task.Priority{task.PriorityHigh, task.PriorityMedium, task.PriorityLow, task.PriorityHigh} {
		_, err := svc.AddTask(ctx, "task "+string(p), p, noDue)
		require.NoError(t, err)
	}

	before, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)

	high, err := svc.FilterByPriority(ctx, task.PriorityHigh)
	require.NoError(t, err)
	assert.Len(t, high, 2)
	for _, tk := range high {
		assert.Equal(t, task.PriorityHigh, tk.Priority)
	}

	pending, err := svc.FilterByStatus(ctx, task.StatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 4)

	after, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestScenario_SearchIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	target, err := svc.AddTask(ctx, "X SEARCHTERM Y", task.PriorityMedium, noDue)
	require.NoError(t, err)
	_, err = svc.AddTask(ctx, "unrelated", task.PriorityMedium, noDue)
	require.NoError(t, err)

	for _, q := range []string{"searchterm", "SEARCHTERM", "SearchTerm"} {
		found, err := svc.Search(ctx, q)
		require.NoError(t, err)
		require.Len(t, found, 1, q)
		assert.Equal(t, target.ID, found[0].ID)
	}
}

func TestScenario_DeleteKeepsOthers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	var ids []string
	for _, d := range []string{"one", "two", "three"} {
		added, err := svc.AddTask(ctx, d, task.PriorityMedium, noDue)
		require.NoError(t, err)
		ids = append(ids, added.ID.String())
	}

	all, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteTask(ctx, all[1].ID))

	rest, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Equal(t, ids[0], rest[0].ID.String())
	assert.Equal(t, "one", rest[0].Description)
	assert.Equal(t, ids[2], rest[1].ID.String())
	assert.Equal(t, "three", rest[1].Description)

	require.NoError(t, svc.DeleteTask(ctx, all[1].ID))
	again, err := svc.GetAllTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 2)
}

func TestScenario_UpdateToInProgress(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	added, err := svc.AddTask(ctx, "Long running", task.PriorityHigh, noDue)
	require.NoError(t, err)

	started, err := svc.StartTask(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, started.Status)

	inProgress := task.StatusInProgress
	low := task.PriorityLow
	updated, err := svc.UpdateTask(ctx, added.ID, task.Update{Status: &inProgress, Priority: &low})
	require.NoError(t, err)
	assert.Equal(t, task.PriorityLow, updated.Priority)
	assert.Equal(t, added.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(added.CreatedAt))
}
