package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/pkg/logger"
	"github.com/brainboard/backend/repository"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// UpdateInput carries the replace-fields request. Empty strings mean "not
// provided"; IsRead merges on presence since false is a meaningful value.
type UpdateInput struct {
	Title   string
	Message string
	IsRead  *bool
}

type UseCase struct {
	repo   repository.NotificationRepository
	logger *zap.Logger
}

func New(repo repository.NotificationRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{repo: repo, logger: logger}
}

// List returns all notifications, newest first, each annotated with the
// relative time label.
func (uc *UseCase) List(ctx context.Context) ([]domain.Notification, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := timeNow()
	for i := range items {
		items[i].Time = domain.TimeAgo(items[i].CreatedAt, now)
	}
	return items, nil
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.Time = domain.TimeAgo(n.CreatedAt, timeNow())
	return n, nil
}

func (uc *UseCase) Create(ctx context.Context, title, message string) (*domain.Notification, error) {
	if title == "" || message == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "Title and message are required")
	}
	now := timeNow()
	n := &domain.Notification{
		ID:        fmt.Sprintf("notif_%s", uuid.NewString()),
		Type:      domain.TypeNotification,
		Title:     title,
		Message:   message,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	uc.logger.Info("notification created",
		zap.String("id", n.ID),
		zap.String("requestId", logger.RequestIDFrom(ctx)))
	out := *n
	out.Time = domain.TimeAgo(out.CreatedAt, timeNow())
	return &out, nil
}

func (uc *UseCase) Update(ctx context.Context, id string, in UpdateInput) (*domain.Notification, error) {
	n, err := uc.repo.Update(ctx, id, func(n *domain.Notification) {
		if in.Title != "" {
			n.Title = in.Title
		}
		if in.Message != "" {
			n.Message = in.Message
		}
		if in.IsRead != nil {
			n.IsRead = *in.IsRead
		}
		n.UpdatedAt = timeNow()
	})
	if err != nil {
		return nil, err
	}
	n.Time = domain.TimeAgo(n.CreatedAt, timeNow())
	return n, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// MarkRead flips the notification to read. Calling it on an already-read
// notification succeeds and just restamps UpdatedAt.
func (uc *UseCase) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := uc.repo.Update(ctx, id, func(n *domain.Notification) {
		n.IsRead = true
		n.UpdatedAt = timeNow()
	})
	if err != nil {
		return nil, err
	}
	n.Time = domain.TimeAgo(n.CreatedAt, timeNow())
	return n, nil
}

func (uc *UseCase) MarkAllRead(ctx context.Context) error {
	return uc.repo.MarkAllRead(ctx, timeNow())
}
