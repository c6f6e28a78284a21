// Package scheduler runs the background jobs of the API process on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/robfig/cron/v3"

	"warehouse/internal/service"
)

const StatisticsRefreshJob = "statistics-refresh"

// Job pairs a cron spec ("@every 5m", "0 * * * *") with the work to run
type Job struct {
	Schedule string
	Timeout  time.Duration
	Run      func(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	jobs map[string]Job
}

// New registers every job; an invalid schedule fails the whole set
func New(jobs map[string]Job) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		jobs: jobs,
	}
	for name, job := range jobs {
		if _, err := s.cron.AddFunc(job.Schedule, func() { s.execute(name, job) }); err != nil {
			return nil, fmt.Errorf("failed to register job %s (%q): %w", name, job.Schedule, err)
		}
		log.Printf("scheduler: registered %s on %q", name, job.Schedule)
	}
	return s, nil
}

func (s *Scheduler) execute(name string, job Job) {
	ctx := context.Background()
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		log.Printf("scheduler: job %s failed after %s: %v", name, time.Since(start), err)
		return
	}
	log.Printf("scheduler: job %s finished in %s", name, time.Since(start))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts scheduling and waits for running jobs until ctx expires
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		log.Println("scheduler: stop timed out waiting for running jobs")
	}
}

// RunNow executes one job synchronously, outside its schedule
func (s *Scheduler) RunNow(name string) error {
	job, ok := s.jobs[name]
	if !ok {
		return fmt.Errorf("unknown job %q, available: %v", name, s.Names())
	}
	ctx := context.Background()
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}
	return job.Run(ctx)
}

func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultJobs builds the job set of the API process
func DefaultJobs(statsSchedule string, stats service.StatisticsService) map[string]Job {
	return map[string]Job{
		StatisticsRefreshJob: {
			Schedule: statsSchedule,
			Timeout:  time.Minute,
			Run: func(ctx context.Context) error {
				snapshot, err := stats.Refresh(ctx)
				if err != nil {
					return err
				}
				log.Printf("scheduler: statistics refreshed, %d orders worth %s", snapshot.TotalOrders, snapshot.TotalValue)
				return nil
			},
		},
	}
}
