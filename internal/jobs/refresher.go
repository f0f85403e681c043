// Package jobs holds the dashboard watch-mode poller. Each tick is an
// ordinary dispatched fetch, not cache invalidation; the store's fencing
// handles a tick racing a manual refresh.
package jobs

import (
	"context"
	"log"
	"time"

	"leaseify/internal/stores"

	"github.com/go-co-op/gocron/v2"
)

// DashboardRefresher re-dispatches the dashboard fetch on an interval.
type DashboardRefresher struct {
	scheduler gocron.Scheduler
	dashboard *stores.DashboardStore
}

func NewDashboardRefresher(dashboard *stores.DashboardStore, interval time.Duration) (*DashboardRefresher, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	r := &DashboardRefresher{scheduler: scheduler, dashboard: dashboard}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(r.refresh, context.Background()),
		gocron.WithName("dashboard-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Start begins polling.
func (r *DashboardRefresher) Start() {
	r.scheduler.Start()
}

// Stop shuts the scheduler down.
func (r *DashboardRefresher) Stop() error {
	return r.scheduler.Shutdown()
}

func (r *DashboardRefresher) refresh(ctx context.Context) {
	if err := r.dashboard.Fetch(ctx); err != nil {
		log.Printf("WARN: dashboard refresh failed: %v", err)
	}
}
