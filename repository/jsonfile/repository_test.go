package jsonfile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
	"github.com/brainboard/backend/repository"
)

func newStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	return jsonstore.Open(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
}

func TestTaskRepositoryNewestFirst(t *testing.T) {
	repo := NewTaskRepository(newStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_a", Title: "first"}))
	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_b", Title: "second"}))

	tasks, err := repo.List(ctx, repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "task_b", tasks[0].ID)
	assert.Equal(t, "task_a", tasks[1].ID)
}

func TestTaskRepositoryFilter(t *testing.T) {
	repo := NewTaskRepository(newStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_a", Status: domain.TaskStatusPending, Priority: domain.TaskPriorityHigh}))
	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_b", Status: domain.TaskStatusCompleted, Priority: domain.TaskPriorityHigh}))
	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_c", Status: domain.TaskStatusPending, Priority: domain.TaskPriorityLow}))

	pending, err := repo.List(ctx, repository.TaskFilter{Status: domain.TaskStatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	pendingHigh, err := repo.List(ctx, repository.TaskFilter{Status: domain.TaskStatusPending, Priority: domain.TaskPriorityHigh})
	require.NoError(t, err)
	require.Len(t, pendingHigh, 1)
	assert.Equal(t, "task_a", pendingHigh[0].ID)
}

func TestTaskRepositoryUpdateUnknownID(t *testing.T) {
	repo := NewTaskRepository(newStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_a", Title: "keep"}))

	_, err := repo.Update(ctx, "task_missing", func(task *domain.Task) { task.Title = "changed" })
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	tasks, err := repo.List(ctx, repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "keep", tasks[0].Title)
}

func TestTaskRepositoryDelete(t *testing.T) {
	repo := NewTaskRepository(newStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_a"}))
	require.NoError(t, repo.Create(ctx, &domain.Task{ID: "task_b"}))

	require.NoError(t, repo.Delete(ctx, "task_a"))
	tasks, err := repo.List(ctx, repository.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	assert.ErrorIs(t, repo.Delete(ctx, "task_a"), domain.ErrTaskNotFound)
	tasks, _ = repo.List(ctx, repository.TaskFilter{})
	assert.Len(t, tasks, 1)
}

func TestNotificationMarkAllRead(t *testing.T) {
	repo := NewNotificationRepository(newStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Notification{ID: "notif_a"}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{ID: "notif_b"}))

	at := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkAllRead(ctx, at))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	for _, n := range items {
		assert.True(t, n.IsRead)
		assert.Equal(t, at, n.UpdatedAt)
	}
}

func TestMessageCreateReminder(t *testing.T) {
	repo := NewMessageRepository(newStore(t))
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	since := now.Add(-2 * time.Hour)

	// user messages never block a reminder
	require.NoError(t, repo.Create(ctx, &domain.Message{ID: "msg_user", Sender: "Alice", CreatedAt: now}))

	first := &domain.Message{ID: "msg_r1", AIGenerated: true, CreatedAt: now}
	require.NoError(t, repo.CreateReminder(ctx, first, since))

	second := &domain.Message{ID: "msg_r2", AIGenerated: true, CreatedAt: now}
	err := repo.CreateReminder(ctx, second, since)
	assert.ErrorIs(t, err, domain.ErrReminderUnavailable)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "msg_r1", items[0].ID)

	// a synthetic message older than the horizon does not block
	stale := NewMessageRepository(newStore(t))
	require.NoError(t, stale.Create(ctx, &domain.Message{ID: "msg_old", AIGenerated: true, CreatedAt: since.Add(-time.Minute)}))
	require.NoError(t, stale.CreateReminder(ctx, &domain.Message{ID: "msg_new", AIGenerated: true, CreatedAt: now}, since))
}

func TestSearchItemSequentialIDs(t *testing.T) {
	repo := NewSearchItemRepository(newStore(t))
	ctx := context.Background()

	first := &domain.SearchItem{Title: "golang"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, 1, first.ID)

	second := &domain.SearchItem{Title: "docs"}
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 2, second.ID)

	// deleting the highest id and re-adding reuses it
	require.NoError(t, repo.Delete(ctx, 2))
	third := &domain.SearchItem{Title: "notes"}
	require.NoError(t, repo.Create(ctx, third))
	assert.Equal(t, 2, third.ID)

	assert.ErrorIs(t, repo.Delete(ctx, 99), domain.ErrSearchItemNotFound)
}
