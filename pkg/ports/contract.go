package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/hedge/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunMazeStoreContract runs a suite of tests to verify that a MazeStore
// implementation adheres to the defined interface contract.
func RunMazeStoreContract(t *testing.T, store MazeStore) {
	ctx := context.Background()
	id := "contract-test-maze-" + time.Now().Format("20060102150405")

	sample := func(t *testing.T) *domain.Maze {
		t.Helper()
		g, err := domain.NewGrid(5, 5)
		require.NoError(t, err)
		for _, p := range []domain.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 2}, {X: 3, Y: 3}} {
			require.NoError(t, g.SetOpen(p.X, p.Y, true))
		}
		return &domain.Maze{Grid: g, Start: domain.Point{X: 1, Y: 1}, End: domain.Point{X: 3, Y: 3}}
	}

	t.Run("Save and Load", func(t *testing.T) {
		m := sample(t)

		err := store.Save(ctx, id, m)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, m.Start, loaded.Start)
		assert.Equal(t, m.End, loaded.End)
		assert.Equal(t, m.Grid.Width, loaded.Grid.Width)
		assert.Equal(t, m.Grid.Height, loaded.Grid.Height)
		assert.Equal(t, m.Grid.Cells, loaded.Grid.Cells)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrMazeNotFound)
	})

	t.Run("Loaded maze is a copy", func(t *testing.T) {
		m := sample(t)
		require.NoError(t, store.Save(ctx, id, m))

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		require.NoError(t, loaded.Grid.SetOpen(0, 0, true))

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		open, err := again.Grid.IsOpen(0, 0)
		require.NoError(t, err)
		assert.False(t, open, "mutating a loaded maze must not leak into the store")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, sample(t)))

		err := store.Delete(ctx, id)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrMazeNotFound, "Load after Delete should return ErrMazeNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := id + "-1"
		id2 := id + "-2"
		_ = store.Save(ctx, id1, sample(t))
		_ = store.Save(ctx, id2, sample(t))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
