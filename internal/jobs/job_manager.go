package jobs

import (
	"fmt"
	"log/slog"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/conversation"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	orderAssignmentJob *OrderAssignmentJob
}

// NewJobManager creates a job manager wiring the assignment retry to the
// shared notifier.
func NewJobManager(notifier *conversation.AssignmentNotifier, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderAssignmentJob: NewOrderAssignmentJob(notifier, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start order assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderAssignmentJob.Stop()
}
