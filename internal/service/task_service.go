package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"planwise/internal/model"
	"planwise/internal/repository"
)

// TaskService wraps task-related business logic. Validation that the
// gateway deliberately leaves to its caller lives here.
type TaskService struct {
	store repository.TaskStore
}

func NewTaskService(store repository.TaskStore) *TaskService {
	return &TaskService{store: store}
}

// Save validates and persists a task, returning the assigned id.
func (s *TaskService) Save(ctx context.Context, task model.Task) (int64, error) {
	if task.Name == "" {
		return 0, fmt.Errorf("task name is required")
	}
	if task.CategoryID == 0 {
		return 0, fmt.Errorf("task category is required")
	}
	if task.End.Before(task.Start) {
		return 0, fmt.Errorf("task ends before it starts")
	}
	return s.store.SaveTask(ctx, task)
}

func (s *TaskService) Get(ctx context.Context, id int64) (*model.Task, error) {
	return s.store.GetTaskByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteTaskByID(ctx, id)
}

// SetCompleted flips the completion flag on a stored task. An unknown
// id is reported as an error because the caller named it explicitly.
func (s *TaskService) SetCompleted(ctx context.Context, id int64, done bool) error {
	task, err := s.store.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return fmt.Errorf("task %d not found", id)
	}
	task.IsCompleted = done
	_, err = s.store.SaveTask(ctx, *task)
	return err
}

// TasksForDay returns the day's tasks ordered by start time.
func (s *TaskService) TasksForDay(ctx context.Context, day time.Time) ([]model.Task, error) {
	tasks, err := s.store.GetTasksForDay(ctx, day)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Start.Before(tasks[j].Start)
	})
	return tasks, nil
}
