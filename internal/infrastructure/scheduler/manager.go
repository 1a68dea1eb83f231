// Package scheduler runs the periodic maintenance jobs using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/expohub/expohub/internal/shared/biztime"
	"github.com/expohub/expohub/internal/shared/logger"
)

// BatchJob is one maintenance job. Execute processes a batch and returns the
// number of items it handled.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// BatchJobFunc adapts a function to BatchJob.
type BatchJobFunc func(ctx context.Context) (int, error)

func (f BatchJobFunc) Execute(ctx context.Context) (int, error) { return f(ctx) }

// jobTimeout bounds a single run.
const jobTimeout = 10 * time.Minute

// SchedulerManager owns the gocron scheduler and the named job table. Jobs
// can also be run once by name, outside the schedule.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	jobsMu sync.RWMutex
	jobs   map[string]BatchJob

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
		jobs:      make(map[string]BatchJob),
	}, nil
}

// Register schedules job under name every interval. A non-positive interval
// keeps the job runnable by name but never schedules it.
func (m *SchedulerManager) Register(name string, interval time.Duration, job BatchJob) error {
	m.jobsMu.Lock()
	if _, exists := m.jobs[name]; exists {
		m.jobsMu.Unlock()
		return fmt.Errorf("job %q is already registered", name)
	}
	m.jobs[name] = job
	m.jobsMu.Unlock()

	if interval <= 0 {
		m.logger.Infow("registered manual job", "job", name)
		return nil
	}

	_, err := m.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			m.execute(ctx, name, job)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("maintenance", name),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered scheduled job", "job", name, "interval", interval.String())
	return nil
}

// RunNow executes the named job once and returns its result.
func (m *SchedulerManager) RunNow(ctx context.Context, name string) (int, error) {
	m.jobsMu.RLock()
	job, ok := m.jobs[name]
	m.jobsMu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("unknown job %q", name)
	}
	return m.execute(ctx, name, job)
}

// JobNames lists the registered job names in order.
func (m *SchedulerManager) JobNames() []string {
	m.jobsMu.RLock()
	defer m.jobsMu.RUnlock()

	names := make([]string, 0, len(m.jobs))
	for name := range m.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *SchedulerManager) execute(ctx context.Context, name string, job BatchJob) (int, error) {
	m.logger.Debugw("job started", "job", name)

	startTime := biztime.NowUTC()
	count, err := job.Execute(ctx)
	if err != nil {
		// Cancelled runs are part of a graceful shutdown.
		if ctx.Err() == nil {
			m.logger.Errorw("job failed",
				"job", name,
				"error", err,
				"processed", count,
				"duration", time.Since(startTime),
			)
		}
		return count, err
	}

	if count > 0 {
		m.logger.Infow("job completed",
			"job", name,
			"processed", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("job found nothing to do",
			"job", name,
			"duration", time.Since(startTime),
		)
	}
	return count, nil
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop waits for running jobs to complete and stops the scheduler.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}

// Jobs returns all scheduled jobs for inspection.
func (m *SchedulerManager) Jobs() []gocron.Job {
	return m.scheduler.Jobs()
}
