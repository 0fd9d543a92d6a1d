package jsonfile

import (
	"context"
	"time"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
)

// MessageRepository stores messages in the shared JSON document, newest first.
// Synthetic assistant messages live in the same collection as user messages.
type MessageRepository struct {
	store *jsonstore.Store
}

func NewMessageRepository(store *jsonstore.Store) *MessageRepository {
	return &MessageRepository{store: store}
}

func (r *MessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	out := []domain.Message{}
	r.store.View(func(doc *jsonstore.Document) {
		out = append(out, doc.Messages...)
	})
	return out, nil
}

func (r *MessageRepository) GetByID(ctx context.Context, id string) (*domain.Message, error) {
	var found *domain.Message
	r.store.View(func(doc *jsonstore.Document) {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				m := doc.Messages[i]
				found = &m
				return
			}
		}
	})
	if found == nil {
		return nil, domain.ErrMessageNotFound
	}
	return found, nil
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		doc.Messages = append([]domain.Message{*m}, doc.Messages...)
		return nil
	})
}

// CreateReminder prepends a synthetic message unless another synthetic
// message already exists with CreatedAt after since. Scan and insert run
// inside one store commit, so two concurrent reminders cannot both land.
func (r *MessageRepository) CreateReminder(ctx context.Context, m *domain.Message, since time.Time) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Messages {
			if doc.Messages[i].AIGenerated && doc.Messages[i].CreatedAt.After(since) {
				return domain.ErrReminderUnavailable
			}
		}
		doc.Messages = append([]domain.Message{*m}, doc.Messages...)
		return nil
	})
}

func (r *MessageRepository) Update(ctx context.Context, id string, mutate func(*domain.Message)) (*domain.Message, error) {
	var updated *domain.Message
	err := r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				mutate(&doc.Messages[i])
				m := doc.Messages[i]
				updated = &m
				return nil
			}
		}
		return domain.ErrMessageNotFound
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Messages {
			if doc.Messages[i].ID == id {
				doc.Messages = append(doc.Messages[:i], doc.Messages[i+1:]...)
				return nil
			}
		}
		return domain.ErrMessageNotFound
	})
}

func (r *MessageRepository) MarkAllRead(ctx context.Context, at time.Time) error {
	return r.store.Update(func(doc *jsonstore.Document) error {
		for i := range doc.Messages {
			doc.Messages[i].IsRead = true
			doc.Messages[i].UpdatedAt = at
		}
		return nil
	})
}
