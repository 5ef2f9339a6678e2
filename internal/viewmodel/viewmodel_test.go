package viewmodel

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshgeng1116/TodoApp/internal/client"
)

var errNetwork = errors.New("network down")

func seeded(todos ...client.Todo) *Model {
	m := New()
	m.Todos = todos
	return m
}

func todo(id, title string, completed bool) client.Todo {
	return client.Todo{ID: id, Title: title, Completed: completed}
}

func TestRefreshSuccess(t *testing.T) {
	m := New()
	m.Error = "stale"

	m.BeginRefresh()
	assert.True(t, m.Loading)
	assert.Empty(t, m.Error)

	m.CompleteRefresh([]client.Todo{todo("1", "a", false)}, nil)
	assert.False(t, m.Loading)
	assert.Len(t, m.Todos, 1)
}

func TestRefreshFailure(t *testing.T) {
	m := New()

	m.BeginRefresh()
	m.CompleteRefresh(nil, errNetwork)

	assert.False(t, m.Loading)
	assert.Equal(t, "Failed to load todos.", m.Error)
}

func TestAddRequiresTitle(t *testing.T) {
	m := New()
	m.NewTitle = "   "

	_, ok := m.BeginAdd()
	assert.False(t, ok)
	assert.False(t, m.Saving)
}

func TestAddPrependsAndClearsDraft(t *testing.T) {
	m := seeded(todo("1", "existing", false))
	m.NewTitle = "  Fresh  "
	m.NewDescription = "  details  "

	req, ok := m.BeginAdd()
	require.True(t, ok)
	assert.True(t, m.Saving)
	assert.Equal(t, "Fresh", req.Title)
	require.NotNil(t, req.Description)
	assert.Equal(t, "details", *req.Description)

	m.CompleteAdd(todo("2", "Fresh", false), nil)
	assert.False(t, m.Saving)
	require.Len(t, m.Todos, 2)
	assert.Equal(t, "2", m.Todos[0].ID)
	assert.Empty(t, m.NewTitle)
	assert.Empty(t, m.NewDescription)
}

func TestAddOmitsEmptyDescription(t *testing.T) {
	m := New()
	m.NewTitle = "Task"
	m.NewDescription = "   "

	req, ok := m.BeginAdd()
	require.True(t, ok)
	assert.Nil(t, req.Description)
}

func TestAddFailureKeepsDraft(t *testing.T) {
	m := New()
	m.NewTitle = "Task"

	_, ok := m.BeginAdd()
	require.True(t, ok)

	m.CompleteAdd(client.Todo{}, errNetwork)
	assert.False(t, m.Saving)
	assert.Equal(t, "Failed to add todo.", m.Error)
	assert.Equal(t, "Task", m.NewTitle)
	assert.Empty(t, m.Todos)
}

func TestToggleOptimisticFlipAndMerge(t *testing.T) {
	m := seeded(todo("1", "a", false))

	req, prev, ok := m.BeginToggle("1")
	require.True(t, ok)
	assert.False(t, prev)
	require.NotNil(t, req.Completed)
	assert.True(t, *req.Completed)
	assert.True(t, m.Todos[0].Completed, "flip applies before the call resolves")

	server := todo("1", "a (renamed upstream)", true)
	m.CompleteToggle("1", server, prev, nil)
	assert.Equal(t, server, m.Todos[0])
}

func TestToggleFailureRevertsAndSetsErrorOnce(t *testing.T) {
	m := seeded(todo("1", "a", false))

	req, prev, ok := m.BeginToggle("1")
	require.True(t, ok)
	require.NotNil(t, req.Completed)

	m.CompleteToggle("1", client.Todo{}, prev, errNetwork)
	assert.False(t, m.Todos[0].Completed)
	assert.Equal(t, "Failed to update todo.", m.Error)
}

func TestEditLifecycle(t *testing.T) {
	m := seeded(todo("1", "Original", false))
	m.Todos[0].Description = "old desc"

	require.True(t, m.StartEdit("1"))
	assert.Equal(t, "1", m.EditingID)
	assert.Equal(t, "Original", m.EditTitle)
	assert.Equal(t, "old desc", m.EditDescription)

	m.EditTitle = "  Renamed  "
	m.EditDescription = "new desc"
	id, req, ok := m.BeginSaveEdit()
	require.True(t, ok)
	assert.Equal(t, "1", id)
	require.NotNil(t, req.Title)
	assert.Equal(t, "Renamed", *req.Title)

	m.CompleteSaveEdit(id, todo("1", "Renamed", false), nil)
	assert.Empty(t, m.EditingID)
	assert.Equal(t, "Renamed", m.Todos[0].Title)
}

func TestSaveEditRequiresTitle(t *testing.T) {
	m := seeded(todo("1", "Original", false))
	require.True(t, m.StartEdit("1"))
	m.EditTitle = "   "

	_, _, ok := m.BeginSaveEdit()
	assert.False(t, ok)
	assert.Equal(t, "1", m.EditingID, "still editing")
}

func TestSaveEditFailureStaysEditing(t *testing.T) {
	m := seeded(todo("1", "Original", false))
	require.True(t, m.StartEdit("1"))
	m.EditTitle = "Renamed"

	id, _, ok := m.BeginSaveEdit()
	require.True(t, ok)

	m.CompleteSaveEdit(id, client.Todo{}, errNetwork)
	assert.Equal(t, "1", m.EditingID)
	assert.Equal(t, "Failed to update todo.", m.Error)
	assert.Equal(t, "Original", m.Todos[0].Title)
}

func TestCancelEdit(t *testing.T) {
	m := seeded(todo("1", "Original", false))
	require.True(t, m.StartEdit("1"))

	m.CancelEdit()
	assert.Empty(t, m.EditingID)
	assert.Empty(t, m.EditTitle)
	assert.Empty(t, m.EditDescription)
}

func TestRemoveOptimisticallyDropsItem(t *testing.T) {
	m := seeded(todo("1", "a", false), todo("2", "b", false))

	backup, ok := m.BeginRemove("1")
	require.True(t, ok)
	require.Len(t, m.Todos, 1)
	assert.Equal(t, "2", m.Todos[0].ID)

	m.CompleteRemove(backup, nil)
	assert.Len(t, m.Todos, 1)
	assert.Empty(t, m.Error)
}

func TestRemoveFailureRestoresFullSnapshotInOrder(t *testing.T) {
	m := seeded(todo("1", "a", false), todo("2", "b", true), todo("3", "c", false))

	backup, ok := m.BeginRemove("2")
	require.True(t, ok)
	require.Len(t, m.Todos, 2)

	m.CompleteRemove(backup, errNetwork)
	require.Len(t, m.Todos, 3)
	assert.Equal(t, "1", m.Todos[0].ID)
	assert.Equal(t, "2", m.Todos[1].ID, "restored in its original position")
	assert.Equal(t, "3", m.Todos[2].ID)
	assert.Equal(t, "Failed to delete todo.", m.Error)
}

func TestFiltersAndCounts(t *testing.T) {
	m := seeded(todo("1", "a", true), todo("2", "b", false), todo("3", "c", true))

	assert.Equal(t, 3, m.TotalCount())
	assert.Equal(t, 2, m.CompletedCount())
	assert.Equal(t, 1, m.ActiveCount())

	assert.Len(t, m.FilteredTodos(), 3)

	m.SetFilter(FilterActive)
	filtered := m.FilteredTodos()
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)

	m.SetFilter(FilterCompleted)
	assert.Len(t, m.FilteredTodos(), 2)

	m.SetFilter(FilterAll)
	assert.Len(t, m.FilteredTodos(), 3)
}
