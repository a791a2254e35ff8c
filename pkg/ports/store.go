package ports

import (
	"context"

	"github.com/aretw0/hedge/pkg/domain"
)

// MazeStore persists generated mazes by ID so a stateless front end (the
// HTTP adapter) can solve them in later requests.
type MazeStore interface {
	// Save persists the maze under the given ID.
	Save(ctx context.Context, id string, m *domain.Maze) error

	// Load retrieves a maze by ID.
	// Returns domain.ErrMazeNotFound if the ID does not exist.
	Load(ctx context.Context, id string) (*domain.Maze, error)

	// Delete removes the maze for the given ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of stored mazes.
	List(ctx context.Context) ([]string, error)
}
