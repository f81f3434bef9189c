package jobs

import (
	"context"
	"log/slog"

	"parceltrack/internal/core/domain/model/order"
	"parceltrack/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// overdueSweepSchedule runs the sweep every ten minutes; delivery estimates
// move in days, so tighter scheduling would only produce duplicate warnings.
const overdueSweepSchedule = "0 */10 * * * *"

// orderSnapshotReader loads the full set of order aggregates for the sweep.
type orderSnapshotReader interface {
	GetAll(ctx context.Context) ([]*order.Order, error)
}

// OverdueDeliveryJob periodically scans for in-flight shipments past their
// estimated delivery date and raises structured warnings for the operations
// team. The job never mutates orders; flagging is an observability concern,
// the lifecycle stays operator-driven.
type OverdueDeliveryJob struct {
	reader orderSnapshotReader
	clock  ports.Clock
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOverdueDeliveryJob creates a job that sweeps for overdue shipments.
func NewOverdueDeliveryJob(
	reader orderSnapshotReader,
	clock ports.Clock,
	logger *slog.Logger,
) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		reader: reader,
		clock:  clock,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the periodic sweep.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every 10 minutes)")
	return nil
}

// Stop stops the sweep.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func (j *OverdueDeliveryJob) sweep() {
	ctx := context.Background()

	orders, err := j.reader.GetAll(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery sweep failed", "error", err)
		return
	}

	now := j.clock.Now()
	overdue := 0
	for _, o := range orders {
		if !o.IsOverdue(now) {
			continue
		}

		overdue++
		j.logger.WarnContext(ctx, "Shipment past estimated delivery",
			"tracking_id", o.TrackingID().String(),
			"status", o.Status().String(),
			"estimated_delivery", o.EstimatedDelivery(),
		)
	}

	if overdue > 0 {
		j.logger.InfoContext(ctx, "Overdue delivery sweep finished", "overdue_count", overdue)
	}
}
