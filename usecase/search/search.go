package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/repository"
)

// Source kinds tagged onto search results.
const (
	KindTask         = "task"
	KindNotification = "notification"
	KindMessage      = "message"
)

// UseCase fans a query out over the three live collections and manages the
// auxiliary search catalog.
type UseCase struct {
	tasks         repository.TaskRepository
	notifications repository.NotificationRepository
	messages      repository.MessageRepository
	items         repository.SearchItemRepository
	logger        *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	notifications repository.NotificationRepository,
	messages repository.MessageRepository,
	items repository.SearchItemRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:         tasks,
		notifications: notifications,
		messages:      messages,
		items:         items,
		logger:        logger,
	}
}

// Search matches query as a case-insensitive substring against tasks,
// notifications and messages in that order, with optional exact post-filters
// on category and type. An empty query yields no results.
func (uc *UseCase) Search(ctx context.Context, query, category, typ string) ([]domain.SearchResult, error) {
	results := []domain.SearchResult{}
	if query == "" {
		return results, nil
	}
	q := strings.ToLower(query)

	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if contains(t.Title, q) || contains(t.Description, q) {
			results = append(results, domain.SearchResult{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Category:    KindTask,
				Type:        KindTask,
				Status:      t.Status,
				Priority:    t.Priority,
			})
		}
	}

	notifications, err := uc.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range notifications {
		if contains(n.Title, q) || contains(n.Message, q) {
			isRead := n.IsRead
			results = append(results, domain.SearchResult{
				ID:          n.ID,
				Title:       n.Title,
				Description: n.Message,
				Category:    KindNotification,
				Type:        KindNotification,
				IsRead:      &isRead,
			})
		}
	}

	messages, err := uc.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range messages {
		if contains(m.Sender, q) || contains(m.Body, q) {
			isRead := m.IsRead
			results = append(results, domain.SearchResult{
				ID:          m.ID,
				Title:       fmt.Sprintf("Message from %s", m.Sender),
				Description: m.Body,
				Category:    KindMessage,
				Type:        KindMessage,
				IsRead:      &isRead,
			})
		}
	}

	if category != "" {
		results = filterBy(results, func(r domain.SearchResult) bool { return r.Category == category })
	}
	if typ != "" {
		results = filterBy(results, func(r domain.SearchResult) bool { return r.Type == typ })
	}
	return results, nil
}

// AddItem appends an auxiliary catalog entry, defaulting category to
// "general" and type to "item".
func (uc *UseCase) AddItem(ctx context.Context, title, category, typ string) (*domain.SearchItem, error) {
	if title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "Title is required")
	}
	if category == "" {
		category = "general"
	}
	if typ == "" {
		typ = "item"
	}
	item := &domain.SearchItem{
		Title:    title,
		Category: category,
		Type:     typ,
	}
	if err := uc.items.Create(ctx, item); err != nil {
		return nil, err
	}
	uc.logger.Info("search item added", zap.Int("id", item.ID))
	return item, nil
}

func (uc *UseCase) DeleteItem(ctx context.Context, id int) error {
	return uc.items.Delete(ctx, id)
}

func contains(field, loweredQuery string) bool {
	return strings.Contains(strings.ToLower(field), loweredQuery)
}

func filterBy(in []domain.SearchResult, keep func(domain.SearchResult) bool) []domain.SearchResult {
	out := in[:0]
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
