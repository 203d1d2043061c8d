package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestReconciler_Sweep(t *testing.T) {
	t.Run("cutoff trails now by the pending TTL", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		reconciler := NewReconciler(mockRepo, 15*time.Minute, time.Minute, zap.NewNop())

		mockRepo.On("RevertStalePending", mock.Anything, mock.MatchedBy(func(olderThan time.Time) bool {
			expected := time.Now().Add(-15 * time.Minute)
			return olderThan.Sub(expected).Abs() < time.Second
		})).Return(int64(3), nil)

		reconciler.sweep(context.Background())

		mockRepo.AssertExpectations(t)
	})

	t.Run("stop terminates the loop", func(t *testing.T) {
		mockRepo := new(MockAppointmentRepository)
		reconciler := NewReconciler(mockRepo, 15*time.Minute, time.Hour, zap.NewNop())

		reconciler.Start(context.Background())
		reconciler.Stop()

		assert.NotPanics(t, func() {
			select {
			case <-reconciler.done:
			default:
				t.Error("done channel should be closed after Stop")
			}
		})
	})
}
