package jsonfile

import (
	"context"
	"time"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
)

// NotificationRepository stores notifications in the shared JSON document,
// newest first.
type NotificationRepository struct {
	store *jsonstore.Store
}

func NewNotificationRepository(store *jsonstore.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

func (r *NotificationRepository) List(ctx context.Context) ([]domain.Notification, error) {
	out := []domain.Notification{}
	r.store.View(func(doc *jsonstore.Document) {
		out = append(out, doc.Notifications...)
	})
	return out, nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var found *domain.Notification
	r.store.View(func(doc *jsonstore.Document) {
		for i := range doc.Notifications {
			if doc.Notifications[i].ID == id {
				n := doc.Notifications[i]
				found = &n
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrNotificationNotFound
	}
	return found, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		doc.Notifications = append([]domain.Notification{*n}, doc.Notifications...)
		return nil
	})
}

func (r *NotificationRepository) Update(ctx context.Context, id string, mutate func(*domain.Notification)) (*domain.Notification, error) {
	var updated *domain.Notification
	err := r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Notifications {
			if doc.Notifications[i].ID == id {
				mutate(&doc.Notifications[i])
				n := doc.Notifications[i]
				updated = &n
				return nil
			}
		}
		return domain.ErrNotificationNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Notifications {
			if doc.Notifications[i].ID == id {
				doc.Notifications = append(doc.Notifications[:i], doc.Notifications[i+1:]...)
				return nil
			}
		}
		return domain.ErrNotificationNotFound
	})
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, at time.Time) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Notifications {
			doc.Notifications[i].IsRead = true
			doc.Notifications[i].UpdatedAt = at
		}
		return nil
	})
}
