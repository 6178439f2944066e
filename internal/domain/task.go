package domain

import "time"

// Task is a single to-do item owned by exactly one user. The owner
// reference is set at creation and never changes afterwards.
type Task struct {
	ID        int64
	UserID    int64
	Title     string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
