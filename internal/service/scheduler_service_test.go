package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planwise/internal/service"
)

func TestSchedulerService_ScheduleDaily(t *testing.T) {
	t.Parallel()

	scheduler := service.NewSchedulerService(time.UTC)

	_, err := scheduler.ScheduleDaily("08:00", func() {})
	require.NoError(t, err)

	_, err = scheduler.ScheduleDaily("8", func() {})
	assert.Error(t, err)

	_, err = scheduler.ScheduleDaily("25:00", func() {})
	assert.Error(t, err)

	_, err = scheduler.ScheduleDaily("12:75", func() {})
	assert.Error(t, err)
}

func TestSchedulerService_ScheduleInterval(t *testing.T) {
	t.Parallel()

	scheduler := service.NewSchedulerService(time.UTC)

	_, err := scheduler.ScheduleInterval(0, func() {})
	assert.Error(t, err)

	_, err = scheduler.ScheduleInterval(time.Minute, func() {})
	assert.NoError(t, err)
}

func TestSchedulerService_RunsScheduledJob(t *testing.T) {
	scheduler := service.NewSchedulerService(time.UTC)

	fired := make(chan struct{}, 1)
	_, err := scheduler.ScheduleInterval(time.Second, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	scheduler.Start()
	defer scheduler.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled job did not run")
	}
}
