package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodbridge/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExpirySweepJob manages the scheduled expiry sweep over posted donations.
// Runs every minute to mark overdue donations Expired and cancel their
// active pickup requests.
type ExpirySweepJob struct {
	handler commands.ExpireDonationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpirySweepJob creates a new job for expiring overdue donations.
// Uses ExpireDonationsCommandHandler to process the sweep every minute.
func NewExpirySweepJob(handler commands.ExpireDonationsCommandHandler, logger *slog.Logger) *ExpirySweepJob {
	return &ExpirySweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "expiry_sweep_job"),
	}
}

// Start begins the expiry sweep job to run every minute.
func (j *ExpirySweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewExpireDonationsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep command rejected", "error", cmdErr)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Expiry sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry sweep job started (running every minute)")
	return nil
}

// Stop stops the expiry sweep job.
func (j *ExpirySweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry sweep job stopped")
}
