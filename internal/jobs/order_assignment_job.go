package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/RomanElektrik/musorok-bot/internal/core/application/conversation"
)

// assignmentSchedule retries the pending-order backlog every 30 seconds.
const assignmentSchedule = "*/30 * * * * *"

// OrderAssignmentJob periodically retries courier assignment for orders
// still in created status. The notifier it drives already swallows the
// nothing-to-do outcomes, so only real failures reach the log.
type OrderAssignmentJob struct {
	notifier *conversation.AssignmentNotifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderAssignmentJob creates the assignment retry job.
func NewOrderAssignmentJob(notifier *conversation.AssignmentNotifier, logger *slog.Logger) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_assignment_job"),
	}
}

// Start schedules the retry and begins running it.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(assignmentSchedule, func() {
		ctx := context.Background()
		if err := j.notifier.AssignOldest(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order assignment retry failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started")
	return nil
}

// Stop stops the retry job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}
