package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StowageJob manages the scheduled distribution of shore-side containers
// across the fleet. Runs every ten seconds so newly registered containers
// do not wait long for a berth.
type StowageJob struct {
	handler commands.StowContainersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStowageJob creates a new job for stowage planning rounds.
// Uses StowContainersCommandHandler to process the unassigned pool.
func NewStowageJob(handler commands.StowContainersCommandHandler, logger *slog.Logger) *StowageJob {
	return &StowageJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stowage_job"),
	}
}

// Start begins the stowage job to run every ten seconds.
func (j *StowageJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewStowContainersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stowage job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stowage job started (running every ten seconds)")
	return nil
}

// Stop stops the stowage job.
func (j *StowageJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stowage job stopped")
}
