package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/reminder"
	"planwise/internal/service"
)

func TestReminderService_DueBetween(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	reminders := service.NewReminderService(store)
	tasks := service.NewTaskService(store)
	ctx := context.Background()
	start := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

	task := validTask(start)
	task.Name = "standup"
	task.Reminders = []time.Time{
		start.Add(-15 * time.Minute),
		start.Add(-2 * time.Hour),
	}
	_, err := tasks.Save(ctx, task)
	require.NoError(t, err)

	due, err := reminders.DueBetween(ctx, start.Add(-30*time.Minute), start)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "standup", due[0].Task.Name)
	assert.True(t, due[0].At.Equal(start.Add(-15*time.Minute)))
	assert.Equal(t, reminder.Reminder{Value: 15, Unit: reminder.Minutes}, due[0].Relative)

	// The window is half-open: (from, to].
	due, err = reminders.DueBetween(ctx, start.Add(-15*time.Minute), start)
	require.NoError(t, err)
	assert.Empty(t, due)

	atBound, err := reminders.DueBetween(ctx, start.Add(-16*time.Minute), start.Add(-15*time.Minute))
	require.NoError(t, err)
	require.Len(t, atBound, 1)
}

func TestReminderService_DueBetween_OrdersAndSkipsCompleted(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	reminders := service.NewReminderService(store)
	tasks := service.NewTaskService(store)
	ctx := context.Background()
	start := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)

	first := validTask(start)
	first.Name = "first"
	first.Reminders = []time.Time{start.Add(-20 * time.Minute)}
	_, err := tasks.Save(ctx, first)
	require.NoError(t, err)

	second := validTask(start.Add(time.Hour))
	second.Name = "second"
	second.Reminders = []time.Time{start.Add(-10 * time.Minute)}
	_, err = tasks.Save(ctx, second)
	require.NoError(t, err)

	done := validTask(start)
	done.Name = "done"
	done.IsCompleted = true
	done.Reminders = []time.Time{start.Add(-5 * time.Minute)}
	_, err = tasks.Save(ctx, done)
	require.NoError(t, err)

	due, err := reminders.DueBetween(ctx, start.Add(-30*time.Minute), start)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, "first", due[0].Task.Name)
	assert.Equal(t, "second", due[1].Task.Name)
}

// Runs the watcher live across several poll ticks; cron invokes each
// tick from a fresh goroutine, so this doubles as the race-detector
// coverage for the window cursor.
func TestReminderService_WatchDeliversOnce(t *testing.T) {
	store := newTestStore(t)
	reminders := service.NewReminderService(store)
	tasks := service.NewTaskService(store)
	ctx := context.Background()

	start := time.Now().Add(2 * time.Minute)
	task := validTask(start)
	task.Name = "standup"
	task.Reminders = []time.Time{time.Now().Add(time.Second)}
	_, err := tasks.Save(ctx, task)
	require.NoError(t, err)

	scheduler := service.NewSchedulerService(time.Local)
	got := make(chan service.Notification, 16)
	require.NoError(t, reminders.Watch(scheduler, time.Second, func(n service.Notification) {
		got <- n
	}))

	scheduler.Start()
	defer scheduler.Stop()

	select {
	case n := <-got:
		assert.Equal(t, "standup", n.Task.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("reminder was not delivered")
	}

	// Later polls must not re-deliver a reminder from an already
	// consumed window.
	select {
	case n := <-got:
		t.Fatalf("reminder delivered twice: at %v", n.At)
	case <-time.After(2 * time.Second):
	}
}

func TestReminderService_DueBetween_LongOffsets(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	reminders := service.NewReminderService(store)
	tasks := service.NewTaskService(store)
	ctx := context.Background()
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	// A reminder can fire many days before its task starts.
	task := validTask(now.AddDate(0, 0, 5))
	task.Name = "trip"
	task.Reminders = []time.Time{now}
	_, err := tasks.Save(ctx, task)
	require.NoError(t, err)

	due, err := reminders.DueBetween(ctx, now.Add(-time.Minute), now)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, "trip", due[0].Task.Name)
	assert.Equal(t, reminder.Reminder{Value: 5, Unit: reminder.Days}, due[0].Relative)
}
