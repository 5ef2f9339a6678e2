// Package viewmodel holds the client-side state machine behind the
// terminal UI: the fetched collection, form drafts, the status filter,
// in-flight flags and a single error slot.
//
// In-flight operations are split into Begin/Complete pairs. Begin applies
// the synchronous part of the transition (optimistic flips and removals
// included) and hands the caller whatever the transport needs — the
// request payload plus a rollback token. Complete reconciles the server
// response, or applies the inverse transition when the call failed. The
// rollback token travels with the caller rather than living on the model,
// so overlapping operations each carry their own; starting a second edit
// while a save is in flight is deliberately not guarded against.
package viewmodel

import (
	"slices"
	"strings"

	"github.com/joshgeng1116/TodoApp/internal/client"
)

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

const (
	errLoadFailed   = "Failed to load todos."
	errAddFailed    = "Failed to add todo."
	errUpdateFailed = "Failed to update todo."
	errDeleteFailed = "Failed to delete todo."
)

type Model struct {
	Todos []client.Todo

	NewTitle       string
	NewDescription string

	EditingID       string
	EditTitle       string
	EditDescription string

	Filter  Filter
	Loading bool
	Saving  bool
	Error   string
}

func New() *Model {
	return &Model{
		Filter: FilterAll,
	}
}

// BeginRefresh marks the list fetch as in flight.
func (m *Model) BeginRefresh() {
	m.Loading = true
	m.Error = ""
}

// CompleteRefresh replaces the collection with the server's, or surfaces
// a load error. Loading clears on both paths.
func (m *Model) CompleteRefresh(todos []client.Todo, err error) {
	m.Loading = false
	if err != nil {
		m.Error = errLoadFailed
		return
	}
	m.Todos = todos
}

// BeginAdd validates the create draft and returns the request to issue.
// It reports false (and does nothing) when the trimmed title is empty.
func (m *Model) BeginAdd() (client.CreateRequest, bool) {
	title := strings.TrimSpace(m.NewTitle)
	if title == "" {
		return client.CreateRequest{}, false
	}

	m.Saving = true
	m.Error = ""

	req := client.CreateRequest{Title: title}
	if description := strings.TrimSpace(m.NewDescription); description != "" {
		req.Description = &description
	}
	return req, true
}

// CompleteAdd prepends the created record and clears the draft. The server
// list is not re-fetched; new items always land on top.
func (m *Model) CompleteAdd(created client.Todo, err error) {
	m.Saving = false
	if err != nil {
		m.Error = errAddFailed
		return
	}
	m.Todos = append([]client.Todo{created}, m.Todos...)
	m.NewTitle = ""
	m.NewDescription = ""
}

// BeginToggle optimistically flips the item's completed flag and returns
// the patch to issue along with the prior value for rollback.
func (m *Model) BeginToggle(id string) (req client.PatchRequest, prev bool, ok bool) {
	i := m.indexOf(id)
	if i < 0 {
		return client.PatchRequest{}, false, false
	}

	prev = m.Todos[i].Completed
	next := !prev
	m.Todos[i].Completed = next
	return client.PatchRequest{Completed: &next}, prev, true
}

// CompleteToggle merges the server snapshot into the item, or reverts the
// flag to its prior value on failure.
func (m *Model) CompleteToggle(id string, updated client.Todo, prev bool, err error) {
	i := m.indexOf(id)
	if err != nil {
		if i >= 0 {
			m.Todos[i].Completed = prev
		}
		m.Error = errUpdateFailed
		return
	}
	if i >= 0 {
		m.Todos[i] = updated
	}
}

// StartEdit enters editing state for the item and seeds the edit draft.
func (m *Model) StartEdit(id string) bool {
	i := m.indexOf(id)
	if i < 0 {
		return false
	}
	m.EditingID = id
	m.EditTitle = m.Todos[i].Title
	m.EditDescription = m.Todos[i].Description
	return true
}

// BeginSaveEdit validates the edit draft and returns the patch to issue.
// It reports false when nothing is being edited or the title trims empty.
func (m *Model) BeginSaveEdit() (id string, req client.PatchRequest, ok bool) {
	if m.EditingID == "" {
		return "", client.PatchRequest{}, false
	}
	title := strings.TrimSpace(m.EditTitle)
	if title == "" {
		return "", client.PatchRequest{}, false
	}

	req.Title = &title
	if description := strings.TrimSpace(m.EditDescription); description != "" {
		req.Description = &description
	}
	return m.EditingID, req, true
}

// CompleteSaveEdit merges the server snapshot and exits editing state; on
// failure the edit form stays open with an error.
func (m *Model) CompleteSaveEdit(id string, updated client.Todo, err error) {
	if err != nil {
		m.Error = errUpdateFailed
		return
	}
	if i := m.indexOf(id); i >= 0 {
		m.Todos[i] = updated
	}
	m.CancelEdit()
}

// CancelEdit exits editing state and clears the edit draft.
func (m *Model) CancelEdit() {
	m.EditingID = ""
	m.EditTitle = ""
	m.EditDescription = ""
}

// BeginRemove optimistically drops the item from the list and returns the
// prior list snapshot for rollback.
func (m *Model) BeginRemove(id string) (backup []client.Todo, ok bool) {
	if m.indexOf(id) < 0 {
		return nil, false
	}

	backup = slices.Clone(m.Todos)
	m.Todos = slices.DeleteFunc(slices.Clone(m.Todos), func(t client.Todo) bool {
		return t.ID == id
	})
	return backup, true
}

// CompleteRemove restores the prior snapshot when the delete failed.
func (m *Model) CompleteRemove(backup []client.Todo, err error) {
	if err != nil {
		m.Todos = backup
		m.Error = errDeleteFailed
	}
}

func (m *Model) SetFilter(f Filter) {
	m.Filter = f
}

// FilteredTodos is the derived view for the active filter.
func (m *Model) FilteredTodos() []client.Todo {
	switch m.Filter {
	case FilterActive:
		return m.filter(func(t client.Todo) bool { return !t.Completed })
	case FilterCompleted:
		return m.filter(func(t client.Todo) bool { return t.Completed })
	default:
		return m.Todos
	}
}

func (m *Model) CompletedCount() int {
	return len(m.filter(func(t client.Todo) bool { return t.Completed }))
}

func (m *Model) ActiveCount() int {
	return len(m.filter(func(t client.Todo) bool { return !t.Completed }))
}

func (m *Model) TotalCount() int {
	return len(m.Todos)
}

func (m *Model) filter(keep func(client.Todo) bool) []client.Todo {
	todos := make([]client.Todo, 0, len(m.Todos))
	for _, todo := range m.Todos {
		if keep(todo) {
			todos = append(todos, todo)
		}
	}
	return todos
}

func (m *Model) indexOf(id string) int {
	return slices.IndexFunc(m.Todos, func(t client.Todo) bool {
		return t.ID == id
	})
}
