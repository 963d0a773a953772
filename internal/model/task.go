package model

import "time"

// Task is a single scheduled item on the agenda.
// ID is zero until the task has been saved for the first time.
type Task struct {
	ID          int64
	Name        string
	Description string
	CategoryID  int64
	Start       time.Time
	End         time.Time
	Reminders   []time.Time
	IsCompleted bool
}
