package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/brainboard/backend/domain"
	"github.com/brainboard/backend/repository"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// Window classifies the current wall-clock hour. It is derived fresh on every
// tick; nothing about it is persisted.
type Window int

const (
	WindowNone Window = iota
	WindowMorning
	WindowMidday
)

// dedupHorizon caps synthetic messages to one per two-hour window.
const dedupHorizon = 2 * time.Hour

// AssistantConfig controls the reminder schedule.
type AssistantConfig struct {
	Name         string
	Interval     time.Duration
	StartupDelay time.Duration
}

// AssistantStatus is the ai-status report.
type AssistantStatus struct {
	Name            string     `json:"aiAssistantName"`
	CurrentHour     int        `json:"currentHour"`
	IsActiveHour    bool       `json:"isActiveHour"`
	RecentMessages  int        `json:"recentMessages"`
	LastMessageTime *time.Time `json:"lastMessageTime"`
	TotalMessages   int        `json:"totalAIMessages"`
}

// Assistant posts canned motivational messages into the message collection
// during the morning and midday windows. It runs on a fixed cron interval
// plus one deferred run shortly after startup; outside a window or after a
// recent synthetic message a tick is a silent no-op.
type Assistant struct {
	messages repository.MessageRepository
	tasks    repository.TaskRepository
	logger   *zap.Logger
	cron     *cron.Cron
	cfg      AssistantConfig
	deferred *time.Timer
}

func NewAssistant(
	messages repository.MessageRepository,
	tasks repository.TaskRepository,
	logger *zap.Logger,
	cfg AssistantConfig,
) *Assistant {
	if cfg.Name == "" {
		cfg.Name = "BrainBoard AI"
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	if cfg.StartupDelay <= 0 {
		cfg.StartupDelay = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Assistant{
		messages: messages,
		tasks:    tasks,
		logger:   logger,
		cfg:      cfg,
		cron:     cron.New(),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = a.cron.AddFunc(schedule, a.tick)

	return a
}

// Start launches the cron schedule and the deferred startup run.
func (a *Assistant) Start() {
	if a == nil || a.cron == nil {
		return
	}
	a.cron.Start()
	a.deferred = time.AfterFunc(a.cfg.StartupDelay, a.tick)
	a.logger.Info("assistant started",
		zap.Duration("interval", a.cfg.Interval),
		zap.String("name", a.cfg.Name))
}

// Stop halts the schedule and waits for a running tick to finish.
func (a *Assistant) Stop(ctx context.Context) {
	if a == nil || a.cron == nil {
		return
	}
	if a.deferred != nil {
		a.deferred.Stop()
	}
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	a.logger.Info("assistant stopped")
}

func (a *Assistant) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Interval)
	defer cancel()

	msg, err := a.TriggerNow(ctx)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeUnavailable) {
			return // outside a window or sent recently; expected, stay quiet
		}
		a.logger.Error("assistant tick failed", zap.Error(err))
		return
	}
	a.logger.Info("assistant sent reminder", zap.String("title", msg.Title))
}

// TriggerNow generates and stores one synthetic message, subject to the same
// window and dedup rules as the timer path. Outside an active window, or when
// a synthetic message already exists within the dedup horizon, it returns
// ErrReminderUnavailable and stores nothing.
func (a *Assistant) TriggerNow(ctx context.Context) (*domain.Message, error) {
	now := timeNow()
	window := classifyWindow(now)
	if window == WindowNone {
		return nil, domain.ErrReminderUnavailable
	}

	msg, err := a.compose(ctx, window, now)
	if err != nil {
		return nil, err
	}
	// The dedup scan and the insert must commit together; a separate
	// List-then-Create lets two overlapping triggers both pass the scan.
	if err := a.messages.CreateReminder(ctx, msg, now.Add(-dedupHorizon)); err != nil {
		return nil, err
	}
	out := *msg
	out.Time = domain.TimeAgo(out.CreatedAt, timeNow())
	return &out, nil
}

// Status reports the assistant's view of the last 24 hours.
func (a *Assistant) Status(ctx context.Context) (*AssistantStatus, error) {
	now := timeNow()
	history, err := a.messages.List(ctx)
	if err != nil {
		return nil, err
	}

	status := &AssistantStatus{
		Name:         a.cfg.Name,
		CurrentHour:  now.Hour(),
		IsActiveHour: classifyWindow(now) != WindowNone,
	}
	for _, m := range history {
		if !m.AIGenerated {
			continue
		}
		status.TotalMessages++
		if now.Sub(m.CreatedAt) < 24*time.Hour {
			status.RecentMessages++
			if status.LastMessageTime == nil || m.CreatedAt.After(*status.LastMessageTime) {
				t := m.CreatedAt
				status.LastMessageTime = &t
			}
		}
	}
	return status, nil
}

// classifyWindow maps a wall-clock instant to its reminder window:
// 07:00-10:59 morning, 12:00-14:59 midday, anything else none.
func classifyWindow(t time.Time) Window {
	switch hour := t.Hour(); {
	case hour >= 7 && hour <= 10:
		return WindowMorning
	case hour >= 12 && hour <= 14:
		return WindowMidday
	default:
		return WindowNone
	}
}

func (a *Assistant) compose(ctx context.Context, window Window, now time.Time) (*domain.Message, error) {
	tasks, err := a.tasks.List(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	pending := 0
	completedToday := 0
	for _, t := range tasks {
		if t.Status == domain.TaskStatusPending {
			pending++
		}
		if t.CompletedOn(now) {
			completedToday++
		}
	}

	var title string
	var body strings.Builder
	mood := domain.MoodSupportive

	switch window {
	case WindowMorning:
		mood = domain.MoodEnergetic
		title = "🌅 Good Morning Reminder"
		body.WriteString(motivationalMessages[rand.Intn(len(motivationalMessages))])
		if pending > 0 {
			body.WriteString("\n\n")
			body.WriteString(taskSpecificMessages[rand.Intn(len(taskSpecificMessages))])
			fmt.Fprintf(&body, "\n\nYou have %d task%s ready for your attention. Start with small steps and build momentum! 🚀",
				pending, pluralSuffix(pending))
		} else {
			body.WriteString("\n\nLooks like your task board is clear! Perfect time to set new learning goals or review your progress. What would you like to accomplish today? 🎯")
		}
	case WindowMidday:
		title = "🌞 Midday Motivation"
		body.WriteString("How's your day going so far? 💫\n\n")
		if completedToday > 0 {
			fmt.Fprintf(&body, "Amazing! You've completed %d task%s today. ",
				completedToday, pluralSuffix(completedToday))
		}
		if pending > 0 {
			fmt.Fprintf(&body, "You still have %d task%s to tackle. ",
				pending, pluralSuffix(pending))
		}
		body.WriteString("\n\nRemember: Progress over perfection! Keep that momentum going! 💪")
	}

	return &domain.Message{
		ID:          fmt.Sprintf("msg_%s", uuid.NewString()),
		Type:        domain.TypeAIReminder,
		Sender:      a.cfg.Name,
		Title:       title,
		Body:        body.String(),
		IsRead:      false,
		AIGenerated: true,
		Mood:        mood,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func pluralSuffix(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
