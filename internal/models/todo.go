package models

import "time"

// Todo is an immutable snapshot of a single todo record. Updates replace
// the stored value instead of mutating it in place; ID and CreatedAt are
// assigned on creation and never change afterwards.
type Todo struct {
	ID          string
	Title       string
	Description string
	CreatedAt   time.Time
	Completed   bool
}
