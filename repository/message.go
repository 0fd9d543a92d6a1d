package repository

import (
	"context"
	"time"

	"github.com/brainboard/backend/domain"
)

type MessageRepository interface {
	List(ctx context.Context) ([]domain.Message, error)
	GetByID(ctx context.Context, id string) (*domain.Message, error)
	Create(ctx context.Context, m *domain.Message) error
	// CreateReminder stores a synthetic message unless another synthetic
	// message was created after since; the check and the insert are one
	// atomic operation.
	CreateReminder(ctx context.Context, m *domain.Message, since time.Time) error
	Update(ctx context.Context, id string, mutate func(*domain.Message)) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, at time.Time) error
}
