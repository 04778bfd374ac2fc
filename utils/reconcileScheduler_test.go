package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"recipehub/services/enrollment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReconciler struct {
	calls int32
	err   error
}

func (r *countingReconciler) Reconcile(ctx context.Context) (enrollment.ReconcileReport, error) {
	atomic.AddInt32(&r.calls, 1)
	if _, ok := ctx.Deadline(); !ok {
		return enrollment.ReconcileReport{}, errors.New("no deadline")
	}
	return enrollment.ReconcileReport{}, r.err
}

func TestRunReconcile(t *testing.T) {
	r := &countingReconciler{}
	RunReconcile(r)
	RunReconcile(&countingReconciler{err: errors.New("db down")})
	assert.EqualValues(t, 1, atomic.LoadInt32(&r.calls))
}

func TestInitializeReconcileScheduler(t *testing.T) {
	r := &countingReconciler{}
	c, err := InitializeReconcileScheduler(r, "@every 1s")
	require.NoError(t, err)
	defer c.Stop()

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&r.calls) > 0 }, 5*time.Second, 50*time.Millisecond)
}

func TestInitializeReconcileScheduler_BadSpec(t *testing.T) {
	_, err := InitializeReconcileScheduler(&countingReconciler{}, "not a schedule")
	assert.Error(t, err)
}
