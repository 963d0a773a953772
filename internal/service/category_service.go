package service

import (
	"context"
	"errors"
	"fmt"

	"planwise/internal/model"
	"planwise/internal/repository"
)

// ErrCategoryInUse is returned when deleting a category that at least
// one task still references.
var ErrCategoryInUse = errors.New("category is used by a task")

// CategoryService provides helpers around categories.
type CategoryService struct {
	store repository.TaskStore
}

func NewCategoryService(store repository.TaskStore) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) Create(ctx context.Context, name string, color uint32) error {
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	return s.store.SaveTaskCategory(ctx, model.TaskCategory{Name: name, Color: color})
}

func (s *CategoryService) List(ctx context.Context) ([]model.TaskCategory, error) {
	return s.store.GetTaskCategories(ctx)
}

// Delete removes a category unless a task still uses it. The usage
// check and the delete are two separate store calls; a task saved in
// between can still end up referencing a deleted category.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	used, err := s.store.IsCategoryUsed(ctx, id)
	if err != nil {
		return err
	}
	if used {
		return ErrCategoryInUse
	}
	return s.store.DeleteTaskCategoryByID(ctx, id)
}
