// Package domain contains the core value types of hedge: grids, mazes,
// paths and the sentinel errors shared across the engine and its adapters.
//
// Everything in this package is a plain value object. A Maze is immutable
// once the generator returns it; solvers read it and produce a fresh Path.
package domain
