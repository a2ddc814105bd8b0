package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorker_EnqueueAsyncRunsBeforeShutdownReturns(t *testing.T) {
	w := NewWorker(2)
	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		w.EnqueueAsync("count", func(ctx context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	w.Shutdown()

	assert.Equal(t, int32(5), ran.Load())
	stats := w.GetStats()
	assert.Equal(t, int64(5), stats.CompletedJobs)
	assert.Zero(t, stats.FailedJobs)
	assert.Zero(t, stats.ActiveJobs)
}

func TestWorker_FailuresAndPanicsAreCounted(t *testing.T) {
	w := NewWorker(1)
	w.EnqueueAsync("fails", func(ctx context.Context) error { return errors.New("boom") })
	w.EnqueueAsync("panics", func(ctx context.Context) error { panic("bad") })
	w.Shutdown()

	stats := w.GetStats()
	assert.Equal(t, int64(2), stats.CompletedJobs)
	assert.Equal(t, int64(2), stats.FailedJobs)
}

func TestWorker_EnqueueProcessesQueue(t *testing.T) {
	w := NewWorker(1)
	done := make(chan struct{})
	w.Enqueue("signal", func(ctx context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("queued job did not run")
	}
	w.Shutdown()

	// jobs after shutdown are dropped instead of panicking on the closed queue
	w.Enqueue("late", func(ctx context.Context) error { return nil })
}

func TestWorker_ScheduleEveryImmediate(t *testing.T) {
	w := NewWorker(1)
	ran := make(chan struct{}, 1)
	w.ScheduleEveryImmediate("tick", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("immediate job did not run")
	}
	w.Shutdown()
}

func TestWorker_SchedulesAreReported(t *testing.T) {
	w := NewWorker(1)
	ran := make(chan struct{}, 1)
	w.ScheduleEveryImmediate("purge", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})
	w.ScheduleEvery("cleanup", 6*time.Hour, func(ctx context.Context) error { return nil })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("immediate schedule did not run")
	}
	w.Shutdown()

	schedules := w.Schedules()
	if assert.Len(t, schedules, 2) {
		assert.Equal(t, "purge", schedules[0].Name)
		assert.Equal(t, "1h0m0s", schedules[0].Interval)
		assert.Equal(t, int64(1), schedules[0].Runs)
		assert.NotNil(t, schedules[0].LastRun)
		assert.Equal(t, "cleanup", schedules[1].Name)
		assert.Zero(t, schedules[1].Runs)
		assert.Nil(t, schedules[1].LastRun)
	}
}
