package payments

import (
	"context"
	"time"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Reconciler periodically reverts appointments that have been pending longer
// than the TTL back to unpaid, clearing their payment session fields. This is
// the cleanup path for gateway sessions that never produced a callback.
type Reconciler struct {
	AppointmentRepository contracts.AppointmentRepository
	PendingTTL            time.Duration
	Interval              time.Duration
	Log                   *zap.Logger
	done                  chan struct{}
}

func NewReconciler(appointmentRepository contracts.AppointmentRepository, pendingTTL, interval time.Duration, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		AppointmentRepository: appointmentRepository,
		PendingTTL:            pendingTTL,
		Interval:              interval,
		Log:                   logger,
		done:                  make(chan struct{}),
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.done:
				return
			case <-ticker.C:
				r.sweep(ctx)
			}
		}
	}()
}

func (r *Reconciler) Stop() {
	close(r.done)
}

func (r *Reconciler) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-r.PendingTTL)
	revertedCount, err := r.AppointmentRepository.RevertStalePending(ctx, cutoff)
	if err != nil {
		r.Log.Error("reconciler.sweep error reverting stale pending appointments",
			zap.Error(err),
		)
		return
	}
	if revertedCount > 0 {
		r.Log.Info("reconciler.sweep reverted stale pending appointments",
			zap.Int64(constvars.LoggingRevertedCountKey, revertedCount),
		)
	}
}
