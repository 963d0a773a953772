package service

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"planwise/internal/model"
	"planwise/internal/reminder"
	"planwise/internal/repository"
)

// Notification is a reminder that is due: the task it belongs to, the
// absolute instant it fires at and its relative label.
type Notification struct {
	Task     model.Task
	At       time.Time
	Relative reminder.Reminder
}

// ReminderService finds reminders that are due and drives the
// poll-based watcher.
type ReminderService struct {
	store repository.TaskStore
}

func NewReminderService(store repository.TaskStore) *ReminderService {
	return &ReminderService{store: store}
}

// Reminder offsets max out below 30 days, so a due reminder belongs to
// a task starting at most that far ahead.
const reminderHorizonDays = 30

// DueBetween returns notifications for every reminder firing within
// (from, to], ordered by fire time. Completed tasks stay silent.
func (s *ReminderService) DueBetween(ctx context.Context, from, to time.Time) ([]Notification, error) {
	seen := make(map[int64]struct{})
	var due []Notification

	// Scan from the window's first day; one extra day covers a window
	// that crosses midnight.
	for offset := 0; offset <= reminderHorizonDays+1; offset++ {
		tasks, err := s.store.GetTasksForDay(ctx, from.AddDate(0, 0, offset))
		if err != nil {
			return nil, err
		}
		for _, task := range tasks {
			if task.IsCompleted {
				continue
			}
			if _, ok := seen[task.ID]; ok {
				continue
			}
			seen[task.ID] = struct{}{}
			for _, at := range task.Reminders {
				if at.After(from) && !at.After(to) {
					due = append(due, Notification{
						Task:     task,
						At:       at,
						Relative: reminder.FromDifference(task.Start, at),
					})
				}
			}
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].At.Before(due[j].At)
	})
	return due, nil
}

// Watch polls for due reminders on the given scheduler and hands each
// notification to notify. Cron runs every invocation in its own
// goroutine, so the mutex both guards the window cursor and keeps
// overlapping polls from double-firing or dropping a window.
func (s *ReminderService) Watch(scheduler *SchedulerService, interval time.Duration, notify func(Notification)) error {
	var mu sync.Mutex
	last := time.Now()
	_, err := scheduler.ScheduleInterval(interval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		mu.Lock()
		defer mu.Unlock()

		now := time.Now()
		due, err := s.DueBetween(ctx, last, now)
		if err != nil {
			log.Printf("reminders: %v", err)
			return
		}
		last = now
		for _, notification := range due {
			notify(notification)
		}
	})
	return err
}
