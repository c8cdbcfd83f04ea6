package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"kitchenops/internal/core/application/usecases/commands"
	"kitchenops/internal/core/ports"
)

// StationAssignmentJob retries station assignment for kitchen orders
// that stayed unassigned because every station was full or a concurrent
// assignment won the last slot.
type StationAssignmentJob struct {
	uowFactory ports.UnitOfWorkFactory
	handler    commands.AssignStationCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStationAssignmentJob creates the retry job. It scans for pending
// unassigned kitchen orders every five seconds and runs the assignment
// handler for each.
func NewStationAssignmentJob(
	uowFactory ports.UnitOfWorkFactory,
	handler commands.AssignStationCommandHandler,
	logger *slog.Logger,
) *StationAssignmentJob {
	return &StationAssignmentJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "station_assignment_job"),
	}
}

// Start schedules the job.
func (j *StationAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Station assignment job started (running every five seconds)")
	return nil
}

// Stop stops the job.
func (j *StationAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Station assignment job stopped")
}

func (j *StationAssignmentJob) run() {
	ctx := context.Background()

	uow := j.uowFactory.Create()
	unassigned, err := uow.KitchenOrderRepository().GetAllUnassigned(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load unassigned kitchen orders", "error", err)
		return
	}

	for _, kitchenOrder := range unassigned {
		cmd, err := commands.NewAssignStationCommand(kitchenOrder.ID(), kitchenOrder.TenantID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build assignment command",
				"kitchen_order_id", kitchenOrder.ID().String(),
				"error", err,
			)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Full stations are the expected reason for a retry.
			if !errors.Is(err, commands.ErrNoStationAvailable) {
				j.logger.ErrorContext(ctx, "Station assignment retry failed",
					"kitchen_order_id", kitchenOrder.ID().String(),
					"error", err,
				)
			}
		}
	}
}
