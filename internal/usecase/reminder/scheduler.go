package reminder

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the cron schedule for the reminder job
type Scheduler struct {
	cron     *cron.Cron
	job      *Job
	schedule string
	logger   *slog.Logger
}

// NewScheduler creates a scheduler that runs the job on the given cron spec
func NewScheduler(job *Job, schedule string, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron:     c,
		job:      job,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the job and starts the cron scheduler
func (s *Scheduler) Start() {
	if _, err := s.cron.AddFunc(s.schedule, s.job.Run); err != nil {
		s.logger.Error("failed to schedule reminder job", "error", err)
	} else {
		s.logger.Info("scheduled reminder job", "schedule", s.schedule)
	}

	s.cron.Start()
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
