package utils

import (
	"context"
	"log"
	"time"

	"recipehub/services/enrollment"

	"github.com/robfig/cron/v3"
)

// Reconciler is the part of the enrollment service the scheduler drives.
type Reconciler interface {
	Reconcile(ctx context.Context) (enrollment.ReconcileReport, error)
}

// InitializeReconcileScheduler runs the enrollment repair pass on schedule
// (a cron spec or @every descriptor). Overlapping runs are skipped.
func InitializeReconcileScheduler(r Reconciler, schedule string) (*cron.Cron, error) {
	log.Println("[RECONCILE] Initializing reconcile scheduler...")

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(schedule, func() { RunReconcile(r) }); err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[RECONCILE] Reconcile scheduler started - runs %s", schedule)
	return c, nil
}

// RunReconcile performs one pass with a bounded deadline.
func RunReconcile(r Reconciler) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := r.Reconcile(ctx)
	if err != nil {
		log.Printf("[RECONCILE] Error reconciling enrollments: %v", err)
		return
	}
	if !report.Changed() {
		log.Println("[RECONCILE] Enrollments consistent")
	}
}
