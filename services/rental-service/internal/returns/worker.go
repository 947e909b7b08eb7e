package returns

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mehedi-hasan-dev/rentora/libs/db"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/model"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/outbox"
	"github.com/mehedi-hasan-dev/rentora/services/rental-service/internal/storage"
)

const dateLayout = "2006-01-02"

// Worker sweeps orders whose rental period has ended, marks them completed
// and emits rental.order.completed.v1 through the outbox. Completing an
// order frees its dates for new bookings on the next availability read.
type Worker struct {
	pool      *db.Pool
	rentals   *storage.RentalRepository
	outbox    *outbox.Repository
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
	now       func() time.Time
}

type WorkerConfig struct {
	Interval  time.Duration
	BatchSize int
}

func NewWorker(pool *db.Pool, rentals *storage.RentalRepository, outboxRepo *outbox.Repository, logger *slog.Logger, cfg WorkerConfig) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = 1 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Worker{
		pool:      pool,
		rentals:   rentals,
		outbox:    outboxRepo,
		logger:    logger,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
		now:       time.Now,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				w.logger.Error("returns sweep failed", "err", err)
			}
		}
	}
}

func (w *Worker) sweep(ctx context.Context) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	asOf := w.now().UTC().Truncate(24 * time.Hour)
	due, err := w.rentals.CompleteDueOrders(ctx, tx, asOf, w.batchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return tx.Commit(ctx)
	}

	for _, order := range due {
		payload, err := json.Marshal(completedPayload(order))
		if err != nil {
			return err
		}
		if err := w.outbox.Insert(ctx, tx, outbox.Event{
			AggregateType: outbox.AggregateRentalOrder,
			AggregateID:   order.ID,
			EventType:     outbox.EventOrderCompleted,
			Payload:       payload,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	w.logger.Info("rental orders completed", "count", len(due))
	return nil
}

func completedPayload(order model.RentalOrder) map[string]any {
	return map[string]any{
		"order_id":   order.ID,
		"product_id": order.ProductID,
		"start_date": order.StartDate.Format(dateLayout),
		"end_date":   order.EndDate.Format(dateLayout),
		"quantity":   order.Quantity,
	}
}
