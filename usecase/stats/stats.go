package stats

import (
	"context"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/repository"
)

// UseCase computes the dashboard summary from the live collections. It holds
// no state of its own, so the numbers can never go stale.
type UseCase struct {
	notifications repository.NotificationRepository
	messages      repository.MessageRepository
	tasks         repository.TaskRepository
}

func New(
	notifications repository.NotificationRepository,
	messages repository.MessageRepository,
	tasks repository.TaskRepository,
) *UseCase {
	return &UseCase{
		notifications: notifications,
		messages:      messages,
		tasks:         tasks,
	}
}

func (uc *UseCase) Collect(ctx context.Context) (*domain.Stats, error) {
	notifications, err := uc.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := uc.messages.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	out := &domain.Stats{}
	out.Notifications.Total = len(notifications)
	for _, n := range notifications {
		if !n.IsRead {
			out.Notifications.Unread++
		}
	}
	out.Messages.Total = len(messages)
	for _, m := range messages {
		if !m.IsRead {
			out.Messages.Unread++
		}
	}
	out.Tasks.Total = len(tasks)
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskStatusCompleted:
			out.Tasks.Completed++
		case domain.TaskStatusPending:
			out.Tasks.Pending++
		case domain.TaskStatusInProgress:
			out.Tasks.InProgress++
		}
	}
	return out, nil
}
