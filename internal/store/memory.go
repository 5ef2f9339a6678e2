package store

import (
	"sync"

	"github.com/joshgeng1116/TodoApp/internal/models"
)

// Memory is a thread-safe in-memory todo store keyed by record ID.
// It keeps no ordering; consumers sort on read. Construct one per process
// (or per test) with New and pass it by handle into the service layer.
type Memory struct {
	mu    sync.RWMutex
	items map[string]models.Todo
}

func New() *Memory {
	return &Memory{
		items: make(map[string]models.Todo),
	}
}

// GetAll returns a snapshot copy of every stored record, in no particular
// order. The snapshot may race benignly with concurrent writers.
func (m *Memory) GetAll() []models.Todo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todos := make([]models.Todo, 0, len(m.items))
	for _, todo := range m.items {
		todos = append(todos, todo)
	}
	return todos
}

func (m *Memory) Get(id string) (models.Todo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	todo, ok := m.items[id]
	return todo, ok
}

// Add stores the record, overwriting any entry with the same ID.
func (m *Memory) Add(todo models.Todo) models.Todo {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[todo.ID] = todo
	return todo
}

// Update replaces the stored record with the same ID. It reports false
// without writing anything when no such record exists.
func (m *Memory) Update(todo models.Todo) (models.Todo, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[todo.ID]; !ok {
		return models.Todo{}, false
	}
	m.items[todo.ID] = todo
	return todo, true
}

// Delete removes the record and reports whether an entry existed.
func (m *Memory) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return false
	}
	delete(m.items, id)
	return true
}
