package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"planwise/internal/model"
	"planwise/internal/reminder"
	"planwise/internal/repository"
)

// Categories that no longer resolve render as an unnamed gray
// placeholder instead of failing the whole agenda.
const missingCategoryColor = 0xFF9E9E9E

// AgendaDay is one entry in the month's day strip.
type AgendaDay struct {
	Weekday  string
	Number   int
	Selected bool
}

// AgendaItem is a task decorated for display.
type AgendaItem struct {
	Task          model.Task
	CategoryName  string
	CategoryColor uint32
	TimeRange     string
	Reminders     []reminder.Reminder
}

// Agenda is the per-day view: a header, the day strip for the month and
// the selected day's items ordered by start time.
type Agenda struct {
	Month string
	Year  string
	Days  []AgendaDay
	Items []AgendaItem
}

// AgendaService assembles the per-day agenda view from stored tasks
// and categories.
type AgendaService struct {
	store repository.TaskStore
}

func NewAgendaService(store repository.TaskStore) *AgendaService {
	return &AgendaService{store: store}
}

func (s *AgendaService) ForDay(ctx context.Context, day time.Time) (*Agenda, error) {
	tasks, err := s.store.GetTasksForDay(ctx, day)
	if err != nil {
		return nil, err
	}
	categories, err := s.store.GetTaskCategories(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.TaskCategory, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Start.Before(tasks[j].Start)
	})

	items := make([]AgendaItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, newAgendaItem(task, byID))
	}

	return &Agenda{
		Month: day.Format("January"),
		Year:  day.Format("2006"),
		Days:  monthDays(day),
		Items: items,
	}, nil
}

func newAgendaItem(task model.Task, categories map[int64]model.TaskCategory) AgendaItem {
	item := AgendaItem{
		Task:          task,
		CategoryColor: missingCategoryColor,
		TimeRange: fmt.Sprintf("%s - %s",
			task.Start.Format("15:04"), task.End.Format("15:04")),
	}
	if category, ok := categories[task.CategoryID]; ok {
		item.CategoryName = category.Name
		item.CategoryColor = category.Color
	}
	for _, at := range task.Reminders {
		item.Reminders = append(item.Reminders, reminder.FromDifference(task.Start, at))
	}
	return item
}

func monthDays(day time.Time) []AgendaDay {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	length := first.AddDate(0, 1, -1).Day()

	days := make([]AgendaDay, 0, length)
	for number := 1; number <= length; number++ {
		date := time.Date(day.Year(), day.Month(), number, 0, 0, 0, 0, day.Location())
		days = append(days, AgendaDay{
			Weekday:  strings.ToUpper(date.Format("Mon")),
			Number:   number,
			Selected: number == day.Day(),
		})
	}
	return days
}
