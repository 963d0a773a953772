package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"planwise/internal/model"
)

// Row types are mapped to domain records by hand so the schema stays
// auditable. Timestamps are stored as epoch milliseconds, which keeps
// the day-window query plain integer arithmetic inside SQLite.

type taskRow struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Description string
	CategoryID  int64 `gorm:"index"`
	StartMs     int64 `gorm:"column:start_ms;index"`
	EndMs       int64 `gorm:"column:end_ms"`
	Reminders   string
	IsCompleted bool `gorm:"default:false"`
}

func (taskRow) TableName() string { return "tasks" }

type categoryRow struct {
	ID    int64 `gorm:"primaryKey"`
	Name  string
	Color uint32
}

func (categoryRow) TableName() string { return "task_categories" }

func taskToRow(t model.Task) taskRow {
	return taskRow{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CategoryID:  t.CategoryID,
		StartMs:     t.Start.UnixMilli(),
		EndMs:       t.End.UnixMilli(),
		Reminders:   encodeReminders(t.Reminders),
		IsCompleted: t.IsCompleted,
	}
}

func taskFromRow(r taskRow) (model.Task, error) {
	reminders, err := decodeReminders(r.Reminders)
	if err != nil {
		return model.Task{}, fmt.Errorf("task %d: %w", r.ID, err)
	}
	return model.Task{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Start:       time.UnixMilli(r.StartMs),
		End:         time.UnixMilli(r.EndMs),
		Reminders:   reminders,
		IsCompleted: r.IsCompleted,
	}, nil
}

func categoryToRow(c model.TaskCategory) categoryRow {
	return categoryRow{ID: c.ID, Name: c.Name, Color: c.Color}
}

func categoryFromRow(r categoryRow) model.TaskCategory {
	return model.TaskCategory{ID: r.ID, Name: r.Name, Color: r.Color}
}

// encodeReminders joins absolute reminder instants into a single
// comma-separated column of epoch milliseconds. The empty list encodes
// to the empty string.
func encodeReminders(reminders []time.Time) string {
	if len(reminders) == 0 {
		return ""
	}
	parts := make([]string, len(reminders))
	for i, at := range reminders {
		parts[i] = strconv.FormatInt(at.UnixMilli(), 10)
	}
	return strings.Join(parts, ",")
}

func decodeReminders(data string) ([]time.Time, error) {
	if data == "" {
		return nil, nil
	}
	parts := strings.Split(data, ",")
	reminders := make([]time.Time, len(parts))
	for i, part := range parts {
		ms, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("decode reminders %q: %w", data, err)
		}
		reminders[i] = time.UnixMilli(ms)
	}
	return reminders, nil
}
