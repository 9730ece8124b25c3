package jobs

import (
	"context"
	"errors"
	"log/slog"

	"paquexpress/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ParcelDispatchJob periodically assigns the oldest pending parcel to the
// least-loaded active agent. Each tick dispatches at most one parcel, so a
// backlog drains across consecutive ticks.
type ParcelDispatchJob struct {
	handler commands.DispatchPendingCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewParcelDispatchJob creates the dispatch job with the given cron spec.
// The spec uses six fields with a seconds column.
func NewParcelDispatchJob(
	handler commands.DispatchPendingCommandHandler,
	spec string,
	logger *slog.Logger,
) *ParcelDispatchJob {
	return &ParcelDispatchJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "parcel_dispatch_job"),
	}
}

// Start schedules the dispatch job.
func (j *ParcelDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty backlog or an empty roster is the normal idle state
			if !errors.Is(err, commands.ErrNoPendingParcels) && !errors.Is(err, commands.ErrNoActiveAgents) {
				j.logger.ErrorContext(ctx, "Parcel dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Parcel dispatch job started", "spec", j.spec)
	return nil
}

// Stop stops the dispatch job.
func (j *ParcelDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Parcel dispatch job stopped")
}
