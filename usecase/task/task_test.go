package task

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
	"github.com/brainboard/backend/repository"
	"github.com/brainboard/backend/repository/jsonfile"
)

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	store := jsonstore.Open(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
	return New(jsonfile.NewTaskRepository(store), zap.NewNop())
}

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func TestCreateAppliesDefaults(t *testing.T) {
	uc := newUseCase(t)

	created, err := uc.Create(context.Background(), CreateInput{Title: "Read", Description: "Ch.1"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "task_"))
	assert.Equal(t, domain.TaskStatusPending, created.Status)
	assert.Equal(t, domain.TaskPriorityMedium, created.Priority)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestCreateRequiresTitleAndDescription(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Create(context.Background(), CreateInput{Title: "Read"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.Create(context.Background(), CreateInput{Description: "Ch.1"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestCreateIDsAreUnique(t *testing.T) {
	uc := newUseCase(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		created, err := uc.Create(context.Background(), CreateInput{Title: "t", Description: "d"})
		require.NoError(t, err)
		assert.False(t, seen[created.ID])
		seen[created.ID] = true
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	uc := newUseCase(t)

	created, err := uc.Create(context.Background(), CreateInput{
		Title:       "Read",
		Description: "Ch.1",
		Priority:    domain.TaskPriorityHigh,
		DueDate:     "2025-06-20",
	})
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUpdateIgnoresEmptyFields(t *testing.T) {
	uc := newUseCase(t)

	created, err := uc.Create(context.Background(), CreateInput{Title: "Read", Description: "Ch.1"})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, UpdateInput{
		Status: domain.TaskStatusCompleted,
		Title:  "", // not provided; must keep the old title
	})
	require.NoError(t, err)
	assert.Equal(t, "Read", updated.Title)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateUnknownID(t *testing.T) {
	uc := newUseCase(t)
	_, err := uc.Update(context.Background(), "task_missing", UpdateInput{Title: "x"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDeleteUnknownID(t *testing.T) {
	uc := newUseCase(t)
	assert.ErrorIs(t, uc.Delete(context.Background(), "task_missing"), domain.ErrTaskNotFound)
}

func TestTodayFocusPrecedence(t *testing.T) {
	// a Sunday
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	fixedClock(t, now)

	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.TodayFocus(ctx)
	assert.ErrorIs(t, err, domain.ErrNoFocusTask)

	weekday, err := uc.Create(ctx, CreateInput{Title: "Sunday review", Description: "weekly"})
	require.NoError(t, err)

	focus, err := uc.TodayFocus(ctx)
	require.NoError(t, err)
	assert.Equal(t, weekday.ID, focus.ID, "weekday name in title matches")

	inProgress, err := uc.Create(ctx, CreateInput{Title: "Draft", Description: "d", Status: domain.TaskStatusInProgress})
	require.NoError(t, err)

	focus, err = uc.TodayFocus(ctx)
	require.NoError(t, err)
	assert.Equal(t, inProgress.ID, focus.ID, "in-progress outranks weekday title")

	dueToday, err := uc.Create(ctx, CreateInput{Title: "Submit", Description: "d", DueDate: "2025-06-15"})
	require.NoError(t, err)

	focus, err = uc.TodayFocus(ctx)
	require.NoError(t, err)
	assert.Equal(t, dueToday.ID, focus.ID, "due today outranks everything")
}

func TestListFilter(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, CreateInput{Title: "a", Description: "d", Priority: domain.TaskPriorityHigh})
	require.NoError(t, err)
	_, err = uc.Create(ctx, CreateInput{Title: "b", Description: "d", Status: domain.TaskStatusCompleted})
	require.NoError(t, err)

	completed, err := uc.List(ctx, repository.TaskFilter{Status: domain.TaskStatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "b", completed[0].Title)
}
