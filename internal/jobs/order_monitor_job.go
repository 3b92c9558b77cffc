package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// defaultOverdueAfter is how long an order may stay in the pipeline before
// the monitor flags it.
const defaultOverdueAfter = 2 * time.Hour

// OrderMonitorJob periodically reports on in-flight orders.
// Runs every minute, logging the active order count and a warning for every
// order that has been in the pipeline longer than the overdue threshold.
type OrderMonitorJob struct {
	handler      queries.GetActiveOrdersQueryHandler
	cron         *cron.Cron
	logger       *slog.Logger
	clock        clock.Clock
	overdueAfter time.Duration
}

// NewOrderMonitorJob creates a new job watching the order pipeline.
// Uses GetActiveOrdersQueryHandler to fetch in-flight orders every minute.
func NewOrderMonitorJob(
	handler queries.GetActiveOrdersQueryHandler,
	clk clock.Clock,
	logger *slog.Logger,
) *OrderMonitorJob {
	return &OrderMonitorJob{
		handler:      handler,
		cron:         cron.New(cron.WithSeconds()),
		logger:       logger.With("component", "order_monitor_job"),
		clock:        clk,
		overdueAfter: defaultOverdueAfter,
	}
}

// Start begins the order monitor job to run every minute.
func (j *OrderMonitorJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		j.run(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order monitor job started (running every minute)")
	return nil
}

// Stop stops the order monitor job.
func (j *OrderMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order monitor job stopped")
}

func (j *OrderMonitorJob) run(ctx context.Context) {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Order monitor job failed", "error", err)
		return
	}

	now := j.clock.Now()
	overdue := 0
	for _, o := range orders {
		age := now.Sub(o.CreatedAt)
		if age < j.overdueAfter {
			continue
		}

		overdue++
		j.logger.WarnContext(ctx, "Order overdue",
			"orderId", o.ID.String(),
			"status", o.Status.String(),
			"age", age.String(),
		)
	}

	j.logger.InfoContext(ctx, "Order pipeline checked",
		"active", len(orders),
		"overdue", overdue,
	)
}
