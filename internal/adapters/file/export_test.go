package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/hedge/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaze(t *testing.T) *domain.Maze {
	t.Helper()
	g, err := domain.NewGrid(5, 5)
	require.NoError(t, err)
	for _, p := range []domain.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}} {
		require.NoError(t, g.SetOpen(p.X, p.Y, true))
	}
	return &domain.Maze{Grid: g, Start: domain.Point{X: 1, Y: 1}, End: domain.Point{X: 3, Y: 1}}
}

func TestExporter_Text(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	dest, err := e.Text("corridor", testMaze(t), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "corridor.txt"), dest)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#####\n#S E#\n"), "unexpected rendering: %q", string(data))
	assert.NotContains(t, string(data), "\x1b[", "text export must not carry ANSI codes")
}

func TestExporter_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)
	m := testMaze(t)
	path := domain.Path{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}}

	dest, err := e.JSON("corridor", m, path)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)

	var got snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, m.Start, got.Maze.Start)
	assert.Equal(t, m.Grid.Cells, got.Maze.Grid.Cells)
	assert.Equal(t, path, got.Solution)

	loaded, solution, err := Load(dest)
	require.NoError(t, err)
	assert.Equal(t, m.End, loaded.End)
	assert.Equal(t, path, solution)
}

func TestLoad_RejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

	_, _, err := Load(path)
	assert.Error(t, err)

	_, _, err = Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestExporter_RejectsEmptyName(t *testing.T) {
	e := New(t.TempDir())
	_, err := e.Text("", testMaze(t), nil)
	assert.Error(t, err)
}

func TestExporter_DefaultBasePath(t *testing.T) {
	e := New("")
	assert.Equal(t, filepath.Join(".hedge", "exports"), e.BasePath)
}
