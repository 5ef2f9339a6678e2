package services

import (
	"strings"
	"time"

	"github.com/joshgeng1116/TodoApp/internal/models"
)

// newTodo builds a fresh record from create params. The title must already
// be known non-empty after trimming; callers check that first.
func newTodo(id string, params CreateParams, now time.Time) models.Todo {
	return models.Todo{
		ID:          id,
		Title:       strings.TrimSpace(params.Title),
		Description: strings.TrimSpace(params.Description),
		CreatedAt:   now,
		Completed:   false,
	}
}

// applyPatch merges a partial update into an existing record and returns
// the resulting snapshot. ID and CreatedAt always carry over.
//
// A present title that trims to empty is silently ignored and the existing
// title kept. A present description always overwrites, normalizing
// whitespace to the empty string. A present completed flag replaces the
// stored one.
func applyPatch(existing models.Todo, params UpdateParams) models.Todo {
	updated := existing

	if params.Title != nil {
		if title := strings.TrimSpace(*params.Title); title != "" {
			updated.Title = title
		}
	}
	if params.Description != nil {
		updated.Description = strings.TrimSpace(*params.Description)
	}
	if params.Completed != nil {
		updated.Completed = *params.Completed
	}

	return updated
}
