package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return New(zerolog.Nop(), server.URL, 5*time.Second), server
}

func TestList(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id":"1","title":"a","description":"","createdAt":"2024-05-01T12:00:00Z","completed":false}]`)
	})
	defer server.Close()

	todos, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "1", todos[0].ID)
	assert.Equal(t, "2024-05-01T12:00:00Z", todos[0].CreatedAt)
}

func TestCreateOmitsNilDescription(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Task", body["title"])
		assert.NotContains(t, body, "description")

		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":"1","title":"Task","description":"","createdAt":"2024-05-01T12:00:00Z","completed":false}`)
	})
	defer server.Close()

	todo, err := c.Create(context.Background(), CreateRequest{Title: "Task"})
	require.NoError(t, err)
	assert.Equal(t, "1", todo.ID)
}

func TestPatchSendsOnlyPresentFields(t *testing.T) {
	completed := true
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/todos/1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"completed": true}, body)

		io.WriteString(w, `{"id":"1","title":"a","description":"","createdAt":"2024-05-01T12:00:00Z","completed":true}`)
	})
	defer server.Close()

	todo, err := c.Patch(context.Background(), "1", PatchRequest{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, todo.Completed)
}

func TestDelete(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/todos/1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	defer server.Close()

	assert.NoError(t, c.Delete(context.Background(), "1"))
}

func TestNotFoundMapsToSentinel(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, c.Delete(context.Background(), "missing"), ErrNotFound)
}

func TestServerErrorSurfacesOnce(t *testing.T) {
	c, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
