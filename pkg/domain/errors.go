package domain

import "errors"

// ErrInvalidDimension is returned when a grid width or height is below the
// minimum size or not odd-aligned for the carving scheme.
var ErrInvalidDimension = errors.New("invalid maze dimension")

// ErrOutOfBounds is returned when a coordinate query falls outside the grid.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// ErrInvalidEndpoint is returned when a solve start or end cell is outside
// the grid or sits on a wall.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// ErrUnsupportedTopology is returned by the dead-end filler when the grid is
// not a perfect maze (it contains a cycle, or the endpoints are disconnected).
var ErrUnsupportedTopology = errors.New("unsupported maze topology")

// ErrUnknownAlgorithm is returned when an algorithm name does not match any
// registered generator or solver.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrMazeNotFound is returned when a maze ID cannot be found in a store.
var ErrMazeNotFound = errors.New("maze not found")
