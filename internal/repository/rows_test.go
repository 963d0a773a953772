package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeReminders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", encodeReminders(nil))

	at := time.UnixMilli(1704906000000)
	assert.Equal(t, "1704906000000", encodeReminders([]time.Time{at}))
	// Duplicates are permitted and preserved in order.
	assert.Equal(t, "1704906000000,1704906000000,1704905100000",
		encodeReminders([]time.Time{at, at, time.UnixMilli(1704905100000)}))
}

func TestDecodeReminders(t *testing.T) {
	t.Parallel()

	empty, err := decodeReminders("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	decoded, err := decodeReminders("1704906000000,1704905100000")
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, int64(1704906000000), decoded[0].UnixMilli())
	assert.Equal(t, int64(1704905100000), decoded[1].UnixMilli())

	_, err = decodeReminders("1704906000000,soon")
	assert.Error(t, err)
}

func TestTaskRowMapping(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 10, 18, 0, 0, 0, time.UTC)
	task := taskFixture(start)
	task.ID = 7

	row := taskToRow(task)
	assert.Equal(t, int64(7), row.ID)
	assert.Equal(t, start.UnixMilli(), row.StartMs)

	back, err := taskFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, task.ID, back.ID)
	assert.Equal(t, task.Name, back.Name)
	assert.Equal(t, task.CategoryID, back.CategoryID)
	assert.True(t, back.Start.Equal(task.Start))
	assert.True(t, back.End.Equal(task.End))
	require.Len(t, back.Reminders, len(task.Reminders))
	for i := range back.Reminders {
		assert.True(t, back.Reminders[i].Equal(task.Reminders[i]))
	}
}
