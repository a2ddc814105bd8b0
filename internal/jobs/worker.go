package jobs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/propease/propease-api/pkg/logger"
)

// Job represents a background task
type Job func(ctx context.Context) error

// Worker runs fire-and-forget jobs (notifications, emails, thumbnails) and
// periodic maintenance such as draft expiry.
type Worker struct {
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	queue         chan namedJob
	asyncSem      chan struct{}
	maxConcurrent int
	stats         WorkerStats
	schedules     []ScheduleInfo
	statsMu       sync.RWMutex
	closeOnce     sync.Once
}

type namedJob struct {
	name string
	run  Job
}

// WorkerStats holds statistics about the worker. CompletedJobs counts every
// finished job; FailedJobs is the subset that returned an error or panicked.
type WorkerStats struct {
	ActiveJobs    int   `json:"active_jobs"`
	CompletedJobs int64 `json:"completed_jobs"`
	FailedJobs    int64 `json:"failed_jobs"`
	QueueLength   int   `json:"queue_length"`
	MaxConcurrent int   `json:"max_concurrent"`
}

// ScheduleInfo describes one periodic job
type ScheduleInfo struct {
	Name     string     `json:"name"`
	Interval string     `json:"interval"`
	Runs     int64      `json:"runs"`
	LastRun  *time.Time `json:"last_run,omitempty"`
}

// NewWorker creates a worker with N concurrent processors
func NewWorker(numWorkers int) *Worker {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	// Allow 2x workers for async jobs
	asyncLimit := numWorkers * 2
	if asyncLimit < 10 {
		asyncLimit = 10
	}

	w := &Worker{
		ctx:           ctx,
		cancel:        cancel,
		queue:         make(chan namedJob, 100),
		asyncSem:      make(chan struct{}, asyncLimit),
		maxConcurrent: asyncLimit,
	}

	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.process(i)
	}

	return w
}

// Enqueue adds a job to the pool queue. When the queue is full the job runs
// on the caller's goroutine.
func (w *Worker) Enqueue(name string, job Job) {
	if w.ctx.Err() != nil {
		logger.Warn("worker stopped, dropping job", "job", name)
		return
	}
	nj := namedJob{name: name, run: job}
	select {
	case w.queue <- nj:
	default:
		logger.Warn("queue full, running job synchronously", "job", name)
		w.run("inline", nj)
	}
}

// EnqueueAsync runs a job in its own goroutine, bounded by a semaphore
func (w *Worker) EnqueueAsync(name string, job Job) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.asyncSem <- struct{}{}
		defer func() { <-w.asyncSem }()
		w.run("async", namedJob{name: name, run: job})
	}()
}

func (w *Worker) process(workerID int) {
	defer w.wg.Done()
	source := fmt.Sprintf("worker-%d", workerID)
	for {
		select {
		case <-w.ctx.Done():
			return
		case job, ok := <-w.queue:
			if !ok {
				return
			}
			w.run(source, job)
		}
	}
}

// ScheduleEvery runs a job at fixed intervals. The first run happens after
// one interval.
func (w *Worker) ScheduleEvery(name string, interval time.Duration, job Job) {
	w.schedule(name, interval, job, false)
}

// ScheduleEveryImmediate runs a job once at startup, then at fixed intervals
func (w *Worker) ScheduleEveryImmediate(name string, interval time.Duration, job Job) {
	w.schedule(name, interval, job, true)
}

func (w *Worker) schedule(name string, interval time.Duration, job Job, immediate bool) {
	w.statsMu.Lock()
	idx := len(w.schedules)
	w.schedules = append(w.schedules, ScheduleInfo{Name: name, Interval: interval.String()})
	w.statsMu.Unlock()

	nj := namedJob{name: name, run: func(ctx context.Context) error {
		err := job(ctx)
		w.trackScheduledRun(idx)
		return err
	}}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		if immediate {
			w.run("scheduler", nj)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				w.run("scheduler", nj)
			}
		}
	}()
}

// run executes one job with panic recovery and bookkeeping
func (w *Worker) run(source string, job namedJob) {
	log := logger.With("job", job.name, "source", source)
	w.trackJobStart()
	defer w.trackJobEnd()
	defer func() {
		if r := recover(); r != nil {
			log.Error("job panicked", "panic", r)
			w.trackJobFailure()
		}
	}()

	start := time.Now()
	if err := job.run(w.ctx); err != nil {
		log.Error("job failed", "error", err, "duration", time.Since(start))
		w.trackJobFailure()
		return
	}
	log.Debug("job completed", "duration", time.Since(start))
}

// Shutdown cancels scheduled jobs and waits for running ones to finish
func (w *Worker) Shutdown() {
	w.closeOnce.Do(func() {
		w.cancel()
		close(w.queue)
	})
	w.wg.Wait()
}

// Context returns the worker's context for checking cancellation
func (w *Worker) Context() context.Context {
	return w.ctx
}

// GetStats returns the current worker statistics
func (w *Worker) GetStats() WorkerStats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	stats := w.stats
	stats.QueueLength = len(w.queue)
	stats.MaxConcurrent = w.maxConcurrent
	return stats
}

// Schedules returns the registered periodic jobs in registration order
func (w *Worker) Schedules() []ScheduleInfo {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()
	out := make([]ScheduleInfo, len(w.schedules))
	copy(out, w.schedules)
	return out
}

func (w *Worker) trackScheduledRun(idx int) {
	now := time.Now()
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.schedules[idx].Runs++
	w.schedules[idx].LastRun = &now
}

func (w *Worker) trackJobStart() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs++
}

func (w *Worker) trackJobEnd() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.ActiveJobs--
	w.stats.CompletedJobs++
}

func (w *Worker) trackJobFailure() {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	w.stats.FailedJobs++
}
