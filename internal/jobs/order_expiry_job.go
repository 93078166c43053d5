package jobs

import (
	"context"
	"log/slog"

	"foodrescue/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob manages the scheduled cancellation of stale pending orders.
// Runs every minute to cancel orders whose pickup window has closed and
// release their reserved stock back to the package.
type OrderExpiryJob struct {
	handler commands.ExpirePendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpiryJob creates a new job for expiring pending orders.
// Uses ExpirePendingOrdersCommandHandler to sweep stale orders every minute.
func NewOrderExpiryJob(handler commands.ExpirePendingOrdersCommandHandler, logger *slog.Logger) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiry_job"),
	}
}

// Start begins the order expiry job to run every minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpirePendingOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)")
	return nil
}

// Stop stops the order expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
