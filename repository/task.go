package repository

import (
	"context"

	"github.com/brainboard/backend/domain"
)

// TaskFilter narrows task listings by exact match; empty fields match all.
type TaskFilter struct {
	Status   string
	Priority string
}

type TaskRepository interface {
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, id string, mutate func(*domain.Task)) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
