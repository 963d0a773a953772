package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/service"
)

func TestCategoryService_CreateAndList(t *testing.T) {
	t.Parallel()

	categories := service.NewCategoryService(newTestStore(t))
	ctx := context.Background()

	assert.ErrorContains(t, categories.Create(ctx, "", 0), "name is required")

	require.NoError(t, categories.Create(ctx, "Work", 0xFF4CAF50))
	require.NoError(t, categories.Create(ctx, "Home", 0xFF2196F3))

	listed, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
}

func TestCategoryService_DeleteBlockedWhileUsed(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	categories := service.NewCategoryService(store)
	tasks := service.NewTaskService(store)
	ctx := context.Background()

	require.NoError(t, categories.Create(ctx, "Work", 0xFF4CAF50))
	listed, err := categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	categoryID := listed[0].ID

	task := validTask(time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC))
	task.CategoryID = categoryID
	taskID, err := tasks.Save(ctx, task)
	require.NoError(t, err)

	err = categories.Delete(ctx, categoryID)
	assert.ErrorIs(t, err, service.ErrCategoryInUse)

	require.NoError(t, tasks.Delete(ctx, taskID))
	require.NoError(t, categories.Delete(ctx, categoryID))

	listed, err = categories.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}
