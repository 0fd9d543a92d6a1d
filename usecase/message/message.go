package message

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
	Sender string
	Body   string
	IsRead *bool
}

type UseCase struct {
	repo   repository.MessageRepository
	logger *zap.Logger
}

func New(repo repository.MessageRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{repo: repo, logger: logger}
}

// List returns all messages, newest first, each annotated with the relative
// time label.
func (uc *UseCase) List(ctx context.Context) ([]domain.Message, error) {
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

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Message, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Time = domain.TimeAgo(m.CreatedAt, timeNow())
	return m, nil
}

func (uc *UseCase) Create(ctx context.Context, sender, body string) (*domain.Message, error) {
	if sender == "" || body == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "Sender and message are required")
	}
	now := timeNow()
	m := &domain.Message{
		ID:        fmt.Sprintf("msg_%s", uuid.NewString()),
		Type:      domain.TypeMessage,
		Sender:    sender,
		Body:      body,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	uc.logger.Info("message created",
		zap.String("id", m.ID),
		zap.String("requestId", logger.RequestIDFrom(ctx)))
	out := *m
	out.Time = domain.TimeAgo(out.CreatedAt, timeNow())
	return &out, nil
}

func (uc *UseCase) Update(ctx context.Context, id string, in UpdateInput) (*domain.Message, error) {
	m, err := uc.repo.Update(ctx, id, func(m *domain.Message) {
		if in.Sender != "" {
			m.Sender = in.Sender
		}
		if in.Body != "" {
			m.Body = in.Body
		}
		if in.IsRead != nil {
			m.IsRead = *in.IsRead
		}
		m.UpdatedAt = timeNow()
	})
	if err != nil {
		return nil, err
	}
	m.Time = domain.TimeAgo(m.CreatedAt, timeNow())
	return m, nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// MarkRead flips the message to read. Calling it on an already-read message
// succeeds and just restamps UpdatedAt.
func (uc *UseCase) MarkRead(ctx context.Context, id string) (*domain.Message, error) {
	m, err := uc.repo.Update(ctx, id, func(m *domain.Message) {
		m.IsRead = true
		m.UpdatedAt = timeNow()
	})
	if err != nil {
		return nil, err
	}
	m.Time = domain.TimeAgo(m.CreatedAt, timeNow())
	return m, nil
}

func (uc *UseCase) MarkAllRead(ctx context.Context) error {
	return uc.repo.MarkAllRead(ctx, timeNow())
}
