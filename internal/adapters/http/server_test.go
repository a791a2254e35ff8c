package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/hedge"
	hedgehttp "github.com/aretw0/hedge/internal/adapters/http"
	"github.com/aretw0/hedge/internal/adapters/memory"
	"github.com/aretw0/hedge/internal/logging"
	"github.com/aretw0/hedge/pkg/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := hedgehttp.NewHandler(hedge.Service{}, memory.New(), prometheus.NewRegistry(), logging.NewNop())
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func createMaze(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := postJSON(t, ts.URL+"/mazes", map[string]any{
		"width": 21, "height": 11, "seed": 7,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID   string       `json:"id"`
		Maze *domain.Maze `json:"maze"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.Maze)
	return created.ID
}

func TestCreateAndGetMaze(t *testing.T) {
	ts := newTestServer(t)
	id := createMaze(t, ts)

	resp, err := http.Get(ts.URL + "/mazes/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		ID   string       `json:"id"`
		Maze *domain.Maze `json:"maze"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, 21, got.Maze.Grid.Width)
	assert.Equal(t, domain.Point{X: 1, Y: 1}, got.Maze.Start)
}

func TestCreateMaze_InvalidDimensions(t *testing.T) {
	ts := newTestServer(t)
	resp := postJSON(t, ts.URL+"/mazes", map[string]any{"width": 4, "height": 4})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetMaze_NotFound(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/mazes/no-such-id")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSolveMaze(t *testing.T) {
	ts := newTestServer(t)
	id := createMaze(t, ts)

	for _, algorithm := range domain.SolverKinds() {
		resp := postJSON(t, ts.URL+"/mazes/"+id+"/solve", map[string]any{
			"algorithm": algorithm,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode, "algorithm %s", algorithm)

		var solved struct {
			Algorithm string      `json:"algorithm"`
			Found     bool        `json:"found"`
			Length    int         `json:"length"`
			Path      domain.Path `json:"path"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&solved))
		assert.Equal(t, algorithm, solved.Algorithm)
		assert.True(t, solved.Found)
		assert.Equal(t, solved.Length, len(solved.Path))
		assert.Equal(t, domain.Point{X: 1, Y: 1}, solved.Path[0])
	}
}

func TestSolveMaze_DefaultsAndErrors(t *testing.T) {
	ts := newTestServer(t)
	id := createMaze(t, ts)

	// Empty body defaults to bfs across the maze's own endpoints.
	resp, err := http.Post(ts.URL+"/mazes/"+id+"/solve", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, ts.URL+"/mazes/"+id+"/solve", map[string]any{"algorithm": "dfs"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A wall cell is not a valid endpoint.
	resp = postJSON(t, ts.URL+"/mazes/"+id+"/solve", map[string]any{
		"start": map[string]int{"x": 0, "y": 0},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	createMaze(t, ts)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
