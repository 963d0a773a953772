package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"planwise/internal/model"
)

// TaskStore is the sole boundary between domain objects and the
// underlying storage engine. Absent rows are reported as nil results,
// never as errors; storage failures surface wrapped and are not
// retried. Implementations must be safe for concurrent use.
type TaskStore interface {
	// SaveTask upserts a task. A zero ID inserts and returns the
	// assigned id; a non-zero ID replaces the row in place.
	SaveTask(ctx context.Context, task model.Task) (int64, error)
	GetTaskByID(ctx context.Context, id int64) (*model.Task, error)
	// GetTasksForDay returns every task whose start falls within
	// [startOfDay, startOfDay+24h], inclusive of both bounds. Order is
	// store-defined.
	GetTasksForDay(ctx context.Context, day time.Time) ([]model.Task, error)
	GetTasksForCategory(ctx context.Context, categoryID int64) ([]model.Task, error)
	DeleteTask(ctx context.Context, task model.Task) error
	DeleteTaskByID(ctx context.Context, id int64) error

	SaveTaskCategory(ctx context.Context, category model.TaskCategory) error
	GetTaskCategories(ctx context.Context) ([]model.TaskCategory, error)
	DeleteTaskCategory(ctx context.Context, category model.TaskCategory) error
	DeleteTaskCategoryByID(ctx context.Context, id int64) error
	// IsCategoryUsed reports whether at least one task references the
	// category. Composing it with a delete is not atomic.
	IsCategoryUsed(ctx context.Context, categoryID int64) (bool, error)
}

// Store implements TaskStore on top of gorm/SQLite.
type Store struct {
	db *gorm.DB
}

var _ TaskStore = (*Store)(nil)

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveTask(ctx context.Context, task model.Task) (int64, error) {
	row := taskToRow(task)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&row).Error
	if err != nil {
		return 0, fmt.Errorf("save task: %w", err)
	}
	return row.ID, nil
}

func (s *Store) GetTaskByID(ctx context.Context, id int64) (*model.Task, error) {
	var row taskRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	task, err := taskFromRow(row)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *Store) GetTasksForDay(ctx context.Context, day time.Time) ([]model.Task, error) {
	startOfDay := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	from := startOfDay.UnixMilli()
	to := startOfDay.Add(24 * time.Hour).UnixMilli()

	var rows []taskRow
	err := s.db.WithContext(ctx).
		Where("start_ms >= ? AND start_ms <= ?", from, to).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("tasks for day: %w", err)
	}
	return tasksFromRows(rows)
}

func (s *Store) GetTasksForCategory(ctx context.Context, categoryID int64) ([]model.Task, error) {
	var rows []taskRow
	err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("tasks for category: %w", err)
	}
	return tasksFromRows(rows)
}

func tasksFromRows(rows []taskRow) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(rows))
	for _, row := range rows {
		task, err := taskFromRow(row)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *Store) DeleteTask(ctx context.Context, task model.Task) error {
	return s.DeleteTaskByID(ctx, task.ID)
}

// DeleteTaskByID removes a task. Deleting an id that does not exist is
// a no-op, not an error.
func (s *Store) DeleteTaskByID(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&taskRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// SaveTaskCategory always inserts; categories are created and deleted,
// never edited in place.
func (s *Store) SaveTaskCategory(ctx context.Context, category model.TaskCategory) error {
	row := categoryToRow(category)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

func (s *Store) GetTaskCategories(ctx context.Context) ([]model.TaskCategory, error) {
	var rows []categoryRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]model.TaskCategory, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, categoryFromRow(row))
	}
	return categories, nil
}

func (s *Store) DeleteTaskCategory(ctx context.Context, category model.TaskCategory) error {
	return s.DeleteTaskCategoryByID(ctx, category.ID)
}

func (s *Store) DeleteTaskCategoryByID(ctx context.Context, id int64) error {
	if err := s.db.WithContext(ctx).Delete(&categoryRow{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func (s *Store) IsCategoryUsed(ctx context.Context, categoryID int64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&taskRow{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("category usage: %w", err)
	}
	return count > 0, nil
}
