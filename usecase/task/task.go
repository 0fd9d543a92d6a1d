package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/repository"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// CreateInput carries the task create request. Status and Priority default to
// pending/medium when empty.
type CreateInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
}

// UpdateInput carries the replace-fields request; empty strings mean "not
// provided".
type UpdateInput struct {
	Title       string
	Description string
	Status      string
	Priority    string
	DueDate     string
}

type UseCase struct {
	repo   repository.TaskRepository
	logger *zap.Logger
}

func New(repo repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{repo: repo, logger: logger}
}

func (uc *UseCase) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return uc.repo.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Task, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*domain.Task, error) {
	if in.Title == "" || in.Description == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "Title and description are required")
	}
	if in.Status == "" {
		in.Status = domain.TaskStatusPending
	}
	if in.Priority == "" {
		in.Priority = domain.TaskPriorityMedium
	}
	now := timeNow()
	t := &domain.Task{
		ID:          fmt.Sprintf("task_%s", uuid.NewString()),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	uc.logger.Info("task created", zap.String("id", t.ID), zap.String("priority", t.Priority))
	return t, nil
}

func (uc *UseCase) Update(ctx context.Context, id string, in UpdateInput) (*domain.Task, error) {
	return uc.repo.Update(ctx, id, func(t *domain.Task) {
		if in.Title != "" {
			t.Title = in.Title
		}
		if in.Description != "" {
			t.Description = in.Description
		}
		if in.Status != "" {
			t.Status = in.Status
		}
		if in.Priority != "" {
			t.Priority = in.Priority
		}
		if in.DueDate != "" {
			t.DueDate = in.DueDate
		}
		t.UpdatedAt = timeNow()
	})
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// TodayFocus picks the task to surface on the dashboard focus card. Candidates
// are tried in precedence order: due today, then in progress, then a title
// mentioning today's weekday name. Within each rule the newest task wins.
func (uc *UseCase) TodayFocus(ctx context.Context) (*domain.Task, error) {
	tasks, err := uc.repo.List(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	now := timeNow()
	today := now.Format("2006-01-02")
	weekday := strings.ToLower(now.Weekday().String())

	for _, t := range tasks {
		if t.DueDate == today {
			return &t, nil
		}
	}
	for _, t := range tasks {
		if t.Status == domain.TaskStatusInProgress {
			return &t, nil
		}
	}
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Title), weekday) {
			return &t, nil
		}
	}
	return nil, domain.ErrNoFocusTask
}
