package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joshgeng1116/TodoApp/internal/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewTodoTrimsFields(t *testing.T) {
	now := time.Now().UTC()
	todo := newTodo("id-1", CreateParams{
		Title:       "  Buy milk  ",
		Description: "  2L full cream  ",
	}, now)

	assert.Equal(t, "id-1", todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, "2L full cream", todo.Description)
	assert.Equal(t, now, todo.CreatedAt)
	assert.False(t, todo.Completed)
}

func TestNewTodoWhitespaceDescriptionBecomesEmpty(t *testing.T) {
	todo := newTodo("id-1", CreateParams{
		Title:       "Task",
		Description: "   ",
	}, time.Now().UTC())

	assert.Equal(t, "", todo.Description)
}

func TestApplyPatch(t *testing.T) {
	existing := models.Todo{
		ID:          "id-1",
		Title:       "Keep",
		Description: "Desc",
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Completed:   false,
	}

	tests := []struct {
		name   string
		params UpdateParams
		want   models.Todo
	}{
		{
			name:   "empty patch changes nothing",
			params: UpdateParams{},
			want:   existing,
		},
		{
			name:   "title replaced with trimmed value",
			params: UpdateParams{Title: strPtr("  New title  ")},
			want: models.Todo{
				ID: "id-1", Title: "New title", Description: "Desc",
				CreatedAt: existing.CreatedAt,
			},
		},
		{
			name:   "whitespace title silently ignored",
			params: UpdateParams{Title: strPtr("   ")},
			want:   existing,
		},
		{
			name:   "present description always overwrites",
			params: UpdateParams{Description: strPtr("")},
			want: models.Todo{
				ID: "id-1", Title: "Keep", Description: "",
				CreatedAt: existing.CreatedAt,
			},
		},
		{
			name:   "completed flag replaced",
			params: UpdateParams{Completed: boolPtr(true)},
			want: models.Todo{
				ID: "id-1", Title: "Keep", Description: "Desc",
				CreatedAt: existing.CreatedAt, Completed: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, applyPatch(existing, tt.params))
		})
	}
}
