// Package memory provides an in-process MazeStore, the default backend for
// the HTTP adapter when no Redis URL is configured.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/hedge/pkg/domain"
)

// Store keeps mazes in a map guarded by a RWMutex. Values are deep-copied
// on both Save and Load so callers can never alias store-internal state.
type Store struct {
	mu    sync.RWMutex
	mazes map[string]*domain.Maze
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{mazes: make(map[string]*domain.Maze)}
}

func snapshot(m *domain.Maze) *domain.Maze {
	return &domain.Maze{Grid: m.Grid.Clone(), Start: m.Start, End: m.End}
}

// Save persists a copy of the maze under id.
func (s *Store) Save(_ context.Context, id string, m *domain.Maze) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mazes[id] = snapshot(m)
	return nil
}

// Load retrieves a copy of the maze stored under id.
func (s *Store) Load(_ context.Context, id string) (*domain.Maze, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mazes[id]
	if !ok {
		return nil, domain.ErrMazeNotFound
	}
	return snapshot(m), nil
}

// Delete removes the maze stored under id.
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.mazes, id)
	return nil
}

// List returns the stored maze IDs.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.mazes))
	for id := range s.mazes {
		ids = append(ids, id)
	}
	return ids, nil
}
