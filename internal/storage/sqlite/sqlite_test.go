package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"todoList/internal/storage"
	"todoList/internal/storage/sqlite"
	"todoList/internal/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Storage = (*sqlite.Storage)(nil)

func openTestDB(t *testing.T, path string) *sqlite.Storage {
	t.Helper()

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStorage_Contract(t *testing.T) {
	storagetest.Run(t, openTestDB(t, ":memory:"))
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "todo.db")

	first, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, storage.Put(ctx, first, "tasks", []string{"persisted"}))
	require.NoError(t, first.Close())

	second := openTestDB(t, path)
	var out []string
	found, err := storage.Get(ctx, second, "tasks", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"persisted"}, out)
}
