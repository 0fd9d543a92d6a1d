package services

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/internal/infrastructure/jsonstore"
	"github.com/brainboard/backend/repository/jsonfile"
)

func newAssistant(t *testing.T) (*Assistant, *jsonfile.MessageRepository, *jsonfile.TaskRepository) {
	t.Helper()
	store := jsonstore.Open(filepath.Join(t.TempDir(), "data.json"), zap.NewNop())
	messages := jsonfile.NewMessageRepository(store)
	tasks := jsonfile.NewTaskRepository(store)
	a := NewAssistant(messages, tasks, zap.NewNop(), AssistantConfig{})
	return a, messages, tasks
}

func fixedClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
}

func TestClassifyWindow(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		hour int
		want Window
	}{
		{0, WindowNone},
		{6, WindowNone},
		{7, WindowMorning},
		{10, WindowMorning},
		{11, WindowNone},
		{12, WindowMidday},
		{14, WindowMidday},
		{15, WindowNone},
		{16, WindowNone},
		{23, WindowNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyWindow(day.Add(time.Duration(tt.hour)*time.Hour)), "hour %d", tt.hour)
	}
}

func TestTriggerNowMorning(t *testing.T) {
	fixedClock(t, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))
	a, messages, tasks := newAssistant(t)
	ctx := context.Background()

	require.NoError(t, tasks.Create(ctx, &domain.Task{ID: "task_1", Status: domain.TaskStatusPending}))

	msg, err := a.TriggerNow(ctx)
	require.NoError(t, err)
	assert.True(t, msg.AIGenerated)
	assert.Equal(t, domain.MoodEnergetic, msg.Mood)
	assert.Equal(t, domain.TypeAIReminder, msg.Type)
	assert.Equal(t, "BrainBoard AI", msg.Sender)
	assert.True(t, strings.HasPrefix(msg.ID, "msg_"))
	assert.Contains(t, msg.Body, "You have 1 task ready")

	stored, err := messages.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].AIGenerated)
}

func TestTriggerNowMidday(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC)
	fixedClock(t, now)
	a, _, tasks := newAssistant(t)
	ctx := context.Background()

	require.NoError(t, tasks.Create(ctx, &domain.Task{
		ID: "task_1", Status: domain.TaskStatusCompleted, UpdatedAt: now.Add(-2 * time.Hour),
	}))
	require.NoError(t, tasks.Create(ctx, &domain.Task{ID: "task_2", Status: domain.TaskStatusPending}))

	msg, err := a.TriggerNow(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MoodSupportive, msg.Mood)
	assert.Contains(t, msg.Body, "You've completed 1 task today")
	assert.Contains(t, msg.Body, "You still have 1 task to tackle")
}

func TestTriggerNowOutsideWindow(t *testing.T) {
	fixedClock(t, time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC))
	a, messages, _ := newAssistant(t)
	ctx := context.Background()

	_, err := a.TriggerNow(ctx)
	assert.ErrorIs(t, err, domain.ErrReminderUnavailable)

	stored, err := messages.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored, "failed trigger must append nothing")
}

func TestTriggerNowSuppressedAfterRecentReminder(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	fixedClock(t, now)
	a, messages, _ := newAssistant(t)
	ctx := context.Background()

	require.NoError(t, messages.Create(ctx, &domain.Message{
		ID: "msg_old", AIGenerated: true, CreatedAt: now.Add(-90 * time.Minute),
	}))

	_, err := a.TriggerNow(ctx)
	assert.ErrorIs(t, err, domain.ErrReminderUnavailable)
}

func TestTriggerNowAllowedAfterHorizon(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	fixedClock(t, now)
	a, messages, _ := newAssistant(t)
	ctx := context.Background()

	require.NoError(t, messages.Create(ctx, &domain.Message{
		ID: "msg_old", AIGenerated: true, CreatedAt: now.Add(-3 * time.Hour),
	}))

	msg, err := a.TriggerNow(ctx)
	require.NoError(t, err)
	assert.True(t, msg.AIGenerated)
}

func TestTriggerNowConcurrentSingleReminder(t *testing.T) {
	fixedClock(t, time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC))
	a, messages, _ := newAssistant(t)
	ctx := context.Background()

	const callers = 50
	var wg sync.WaitGroup
	var created atomic.Int64
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := a.TriggerNow(ctx); err == nil {
				created.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, created.Load())

	stored, err := messages.List(ctx)
	require.NoError(t, err)
	synthetic := 0
	for _, m := range stored {
		if m.AIGenerated {
			synthetic++
		}
	}
	assert.Equal(t, 1, synthetic, "overlapping triggers must store exactly one reminder")
}

func TestUserMessagesDoNotSuppress(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	fixedClock(t, now)
	a, messages, _ := newAssistant(t)
	ctx := context.Background()

	require.NoError(t, messages.Create(ctx, &domain.Message{
		ID: "msg_user", Sender: "Alice", CreatedAt: now.Add(-10 * time.Minute),
	}))

	_, err := a.TriggerNow(ctx)
	require.NoError(t, err)
}

func TestStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	fixedClock(t, now)
	a, messages, _ := newAssistant(t)
	ctx := context.Background()

	recent := now.Add(-1 * time.Hour)
	require.NoError(t, messages.Create(ctx, &domain.Message{
		ID: "msg_1", AIGenerated: true, CreatedAt: now.Add(-20 * time.Hour),
	}))
	require.NoError(t, messages.Create(ctx, &domain.Message{
		ID: "msg_2", AIGenerated: true, CreatedAt: recent,
	}))
	require.NoError(t, messages.Create(ctx, &domain.Message{
		ID: "msg_3", AIGenerated: true, CreatedAt: now.Add(-48 * time.Hour),
	}))
	require.NoError(t, messages.Create(ctx, &domain.Message{
		ID: "msg_4", Sender: "Alice", CreatedAt: recent,
	}))

	status, err := a.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BrainBoard AI", status.Name)
	assert.Equal(t, 9, status.CurrentHour)
	assert.True(t, status.IsActiveHour)
	assert.Equal(t, 2, status.RecentMessages)
	assert.Equal(t, 3, status.TotalMessages)
	require.NotNil(t, status.LastMessageTime)
	assert.Equal(t, recent, *status.LastMessageTime)
}

func TestStatusOutsideWindow(t *testing.T) {
	fixedClock(t, time.Date(2025, 6, 15, 22, 0, 0, 0, time.UTC))
	a, _, _ := newAssistant(t)

	status, err := a.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.IsActiveHour)
	assert.Equal(t, 0, status.RecentMessages)
	assert.Nil(t, status.LastMessageTime)
}
