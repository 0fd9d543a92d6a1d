package repository

import (
	"context"
	"time"

	"github.com/brainboard/backend/domain"
)

type NotificationRepository interface {
	List(ctx context.Context) ([]domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	Update(ctx context.Context, id string, mutate func(*domain.Notification)) (*domain.Notification, error)
	Delete(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, at time.Time) error
}
