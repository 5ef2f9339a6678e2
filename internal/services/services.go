package services

import (
	"errors"

	"github.com/joshgeng1116/TodoApp/internal/models"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTodoNotFound  = errors.New("todo not found")
)

type TodoService interface {
	// List returns every record sorted by creation time, newest first.
	// Records created at the same instant are ordered by ID so the
	// result is deterministic within a single process.
	List() []models.Todo

	// Get returns the record with the given ID or ErrTodoNotFound.
	Get(id string) (models.Todo, error)

	// Create normalizes the params, assigns a fresh ID and creation
	// timestamp and persists the record.
	//
	// It returns ErrTitleRequired if the title trims to an empty string.
	Create(params CreateParams) (models.Todo, error)

	// Update applies a partial update to the record with the given ID.
	// Only fields present in the params are touched; a title that trims
	// to empty is ignored and the existing title kept.
	//
	// It returns ErrTodoNotFound if no record exists for the ID.
	Update(id string, params UpdateParams) (models.Todo, error)

	// Delete removes the record and reports whether it existed.
	Delete(id string) bool
}

type CreateParams struct {
	Title       string
	Description string
}

// UpdateParams carries a partial update. Nil fields mean "leave unchanged";
// a non-nil field always overwrites, which is how "clear the description"
// stays distinguishable from "no change requested".
type UpdateParams struct {
	Title       *string
	Description *string
	Completed   *bool
}
