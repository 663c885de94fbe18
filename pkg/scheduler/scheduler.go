package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/blogbuster/pkg/portal"
)

type Job func(context.Context) error

// Observer is notified after every run with the job name and its result.
type Observer func(name string, elapsed time.Duration, err error)

// Scheduler runs a single named job on a cron expression.
type Scheduler struct {
	name       string
	cron       *cron.Cron
	expression string
	job        Job
	logger     *slog.Logger
	jobTimeout time.Duration
	observers  []Observer

	mu      sync.Mutex
	started bool
	entryID cron.EntryID
}

type Option func(*Scheduler)

func WithCron(c *cron.Cron) Option {
	return func(s *Scheduler) {
		if c != nil {
			s.cron = c
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithJobTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		if timeout > 0 {
			s.jobTimeout = timeout
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Scheduler) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

func New(name, expression string, job Job, opts ...Option) (*Scheduler, error) {
	if expression == "" {
		return nil, errors.New("cron expression cannot be empty")
	}

	if job == nil {
		return nil, errors.New("job cannot be nil")
	}

	if _, err := portal.CronParser.Parse(expression); err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}

	s := &Scheduler{
		name:       name,
		expression: expression,
		job:        job,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cron == nil {
		s.cron = cron.New(cron.WithParser(portal.CronParser))
	}

	s.logger = s.logger.With("job", name)

	return s, nil
}

func (s *Scheduler) Name() string {
	return s.name
}

// Start registers the job and starts the cron engine. Cancelling ctx stops it.
func (s *Scheduler) Start(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return errors.New("scheduler already started")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	entryID, err := s.cron.AddFunc(s.expression, func() {
		if err := s.Run(ctx); err != nil {
			s.logger.Error("scheduled job failed", "error", err)
		}
	})

	if err != nil {
		return fmt.Errorf("schedule job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.started = true

	s.logger.Info("scheduler started", "expression", s.expression)

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop halts the engine and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s == nil {
		return
	}

	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}

	s.cron.Remove(s.entryID)
	done := s.cron.Stop()
	s.started = false
	s.mu.Unlock()

	<-done.Done()
}

// Run executes the job once, right now.
func (s *Scheduler) Run(ctx context.Context) error {
	if s == nil {
		return errors.New("scheduler is nil")
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	start := time.Now()
	err := s.job(ctx)

	for _, observe := range s.observers {
		observe(s.name, time.Since(start), err)
	}

	return err
}
