// Package digest runs a job on a cron schedule until its context ends.
package digest

import (
	"context"
	"fmt"
	"log"
	"sync"

	rcron "github.com/robfig/cron/v3"
)

// Job is run on each tick. Errors are logged, not fatal.
type Job func(ctx context.Context) error

// Service schedules a single job.
type Service struct {
	schedule string
	job      Job

	mu     sync.Mutex
	cron   *rcron.Cron
	cancel context.CancelFunc
}

// New creates a Service for a 5-field cron expression or a descriptor such
// as "@every 1h" or "@daily".
func New(schedule string, job Job) *Service {
	return &Service{schedule: schedule, job: job}
}

// Start registers the job and starts the scheduler. It returns an error for
// an invalid schedule or if the service is already running.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return fmt.Errorf("digest already started")
	}

	runCtx, cancel := context.WithCancel(ctx)
	c := rcron.New()
	if _, err := c.AddFunc(s.schedule, func() { s.run(runCtx) }); err != nil {
		cancel()
		return fmt.Errorf("schedule %q: %w", s.schedule, err)
	}
	c.Start()
	s.cron = c
	s.cancel = cancel
	log.Printf("digest: started with schedule %q", s.schedule)

	go func() {
		<-runCtx.Done()
		s.Stop()
	}()
	return nil
}

// Stop halts the scheduler and waits for a running job to return.
func (s *Service) Stop() {
	s.mu.Lock()
	c, cancel := s.cron, s.cancel
	s.cron, s.cancel = nil, nil
	s.mu.Unlock()
	if c == nil {
		return
	}
	cancel()
	<-c.Stop().Done()
	log.Println("digest: stopped")
}

// RunNow executes the job once, outside the schedule.
func (s *Service) RunNow(ctx context.Context) {
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("digest: panic in job: %v", r)
		}
	}()
	if err := s.job(ctx); err != nil {
		log.Printf("digest: job failed: %v", err)
	}
}
