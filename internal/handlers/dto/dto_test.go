package dto_test

import (
	"testing"
	"time"

	"todoList/internal/handlers/dto"
	"todoList/internal/models/task"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestUpdateTaskRequest_ToUpdate(t *testing.T) {
	due := time.Date(2030, 3, 4, 0, 0, 0, 0, time.UTC)

	t.Run("empty request", func(t *testing.T) {
		upd, err := dto.UpdateTaskRequest{}.ToUpdate()
		require.NoError(t, err)
		assert.True(t, upd.IsEmpty())
	})

	t.Run("all fields", func(t *testing.T) {
		upd, err := dto.UpdateTaskRequest{
			Description: ptr("Pay bills"),
			Priority:    ptr("High"),
			Status:      ptr("InProgress"),
			DueDate:     ptr("2030-03-04"),
		}.ToUpdate()
		require.NoError(t, err)

		assert.Equal(t, "Pay bills", *upd.Description)
		assert.Equal(t, task.PriorityHigh, *upd.Priority)
		assert.Equal(t, task.StatusInProgress, *upd.Status)
		assert.True(t, due.Equal(*upd.DueDate))
		assert.False(t, upd.ClearDueDate)
	})

	t.Run("blank due date clears it", func(t *testing.T) {
		upd, err := dto.UpdateTaskRequest{DueDate: ptr("")}.ToUpdate()
		require.NoError(t, err)
		assert.Nil(t, upd.DueDate)
		assert.True(t, upd.ClearDueDate)
	})

	invalid := []struct {
		name string
		req  dto.UpdateTaskRequest
	}{
		{name: "priority", req: dto.UpdateTaskRequest{Priority: ptr("urgent")}},
		{name: "status", req: dto.UpdateTaskRequest{Status: ptr("Done")}},
		{name: "due date", req: dto.UpdateTaskRequest{DueDate: ptr("next week")}},
	}
	for _, tt := range invalid {
		t.Run("invalid "+tt.name, func(t *testing.T) {
			_, err := tt.req.ToUpdate()
			assert.ErrorIs(t, err, task.ErrValidation)
		})
	}
}

func TestFromTask(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tk := task.Task{
		ID:          uuid.New(),
		Description: "Buy milk",
		Status:      task.StatusPending,
		Priority:    task.PriorityLow,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	resp := dto.FromTask(tk)
	assert.Equal(t, tk.ID, resp.ID)
	assert.Equal(t, "Low", resp.Priority)
	assert.Nil(t, resp.DueDate)

	tk.DueDate = now.AddDate(0, 1, 0)
	resp = dto.FromTask(tk)
	require.NotNil(t, resp.DueDate)
	assert.True(t, tk.DueDate.Equal(*resp.DueDate))

	assert.Empty(t, dto.FromTaskList(nil))
	assert.NotNil(t, dto.FromTaskList(nil))
}
