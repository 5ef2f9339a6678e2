package services

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/joshgeng1116/TodoApp/internal/models"
	"github.com/joshgeng1116/TodoApp/internal/store"
)

type todoServiceImpl struct {
	logger zerolog.Logger
	store  *store.Memory
}

func NewTodoService(
	logger zerolog.Logger,
	memStore *store.Memory,
) TodoService {
	return &todoServiceImpl{
		logger: logger,
		store:  memStore,
	}
}

func (s *todoServiceImpl) List() []models.Todo {
	todos := s.store.GetAll()

	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID < todos[j].ID
	})

	s.logger.Debug().
		Int("count", len(todos)).
		Msg("listed todos")
	return todos
}

func (s *todoServiceImpl) Get(id string) (models.Todo, error) {
	todo, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn().
			Str("id", id).
			Msg("todo not found")
		return models.Todo{}, ErrTodoNotFound
	}
	return todo, nil
}

func (s *todoServiceImpl) Create(params CreateParams) (models.Todo, error) {
	if strings.TrimSpace(params.Title) == "" {
		s.logger.Warn().Msg("rejected todo with empty title")
		return models.Todo{}, ErrTitleRequired
	}

	todo := s.store.Add(newTodo(uuid.NewString(), params, time.Now().UTC()))

	s.logger.Info().
		Str("id", todo.ID).
		Msg("created todo")
	return todo, nil
}

func (s *todoServiceImpl) Update(id string, params UpdateParams) (models.Todo, error) {
	existing, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn().
			Str("id", id).
			Msg("todo not found")
		return models.Todo{}, ErrTodoNotFound
	}

	updated, ok := s.store.Update(applyPatch(existing, params))
	if !ok {
		// Deleted between the lookup and the write; last writer wins
		// elsewhere, here the record is simply gone.
		s.logger.Warn().
			Str("id", id).
			Msg("todo disappeared during update")
		return models.Todo{}, ErrTodoNotFound
	}

	s.logger.Info().
		Str("id", id).
		Msg("updated todo")
	return updated, nil
}

func (s *todoServiceImpl) Delete(id string) bool {
	deleted := s.store.Delete(id)
	if !deleted {
		s.logger.Warn().
			Str("id", id).
			Msg("todo not found")
		return false
	}

	s.logger.Info().
		Str("id", id).
		Msg("deleted todo")
	return true
}
