package repository

import (
	"context"

	"taskboard/internal/domain"
)

// TaskUpdate carries the mutable task fields for a partial update.
// Nil fields are left untouched by the store.
type TaskUpdate struct {
	Title     *string
	Completed *bool
}

// TaskRepository exposes persistence operations for Task aggregates.
// Every read and write is scoped to an owning user; a task belonging
// to someone else behaves exactly like a missing row.
type TaskRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, task *domain.Task) (int64, error)
	Get(ctx context.Context, userID, id int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Task, error)
	Update(ctx context.Context, userID, id int64, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}
