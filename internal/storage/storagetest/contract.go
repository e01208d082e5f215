// Package storagetest holds the behavior every storage.Storage backend must
// share. Backend test files call Run with a freshly emptied store.
package storagetest

import (
	"context"
	"testing"

	"todoList/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type document struct {
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Tags  []string `json:"tags"`
}

func Run(t *testing.T, s storage.Storage) {
	t.Helper()
	ctx := context.Background()

	t.Run("load missing key", func(t *testing.T) {
		data, err := s.Load(ctx, "contract:missing")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("round trip", func(t *testing.T) {
		in := []document{{Name: "a", Count: 1, Tags: []string{"x", "y"}}, {Name: "b"}}
		require.NoError(t, storage.Put(ctx, s, "contract:docs", in))

		var out []document
		found, err := storage.Get(ctx, s, "contract:docs", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("save overwrites", func(t *testing.T) {
		require.NoError(t, storage.Put(ctx, s, "contract:n", 1))
		require.NoError(t, storage.Put(ctx, s, "contract:n", 2))

		var n int
		found, err := storage.Get(ctx, s, "contract:n", &n)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 2, n)
	})

	t.Run("loaded copies are independent", func(t *testing.T) {
		require.NoError(t, storage.Put(ctx, s, "contract:tags", []string{"keep"}))

		var first []string
		_, err := storage.Get(ctx, s, "contract:tags", &first)
		require.NoError(t, err)
		first[0] = "changed"

		var second []string
		_, err = storage.Get(ctx, s, "contract:tags", &second)
		require.NoError(t, err)
		assert.Equal(t, []string{"keep"}, second)
	})

	t.Run("empty collection stays a collection", func(t *testing.T) {
		require.NoError(t, storage.Put(ctx, s, "contract:empty", []document{}))

		var out []document
		found, err := storage.Get(ctx, s, "contract:empty", &out)
		require.NoError(t, err)
		require.True(t, found)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, storage.Put(ctx, s, "contract:gone", "v"))
		require.NoError(t, s.Remove(ctx, "contract:gone"))
		require.NoError(t, s.Remove(ctx, "contract:gone"))

		data, err := s.Load(ctx, "contract:gone")
		require.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, storage.Put(ctx, s, "contract:c1", 1))
		require.NoError(t, storage.Put(ctx, s, "contract:c2", 2))
		require.NoError(t, s.Clear(ctx))
		require.NoError(t, s.Clear(ctx))

		for _, key := range []string{"contract:c1", "contract:c2", "contract:docs"} {
			data, err := s.Load(ctx, key)
			require.NoError(t, err)
			assert.Nil(t, data, key)
		}
	})
}
