package jobs

import (
	"fmt"
	"log/slog"

	"kitchenops/internal/core/application/usecases/commands"
	"kitchenops/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stationAssignmentJob *StationAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the unit of work factory and command handler as dependencies to
// wire up the job execution.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	assignStationHandler commands.AssignStationCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stationAssignmentJob: NewStationAssignmentJob(uowFactory, assignStationHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stationAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start station assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stationAssignmentJob.Stop()
}
