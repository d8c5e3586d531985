package jobs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// defaultSchedule runs the refresh every day at 03:00 (seconds-granularity spec).
const defaultSchedule = "0 0 3 * * *"

const refreshTimeout = 2 * time.Minute

// EngagementSource is the slice of the client use case the refresher needs.
type EngagementSource interface {
	RefreshEngagement(ctx context.Context, now time.Time) (int, error)
}

// EngagementRefresher periodically reclassifies client status and segment so
// churn-risk and VIP labels stay current without anyone opening the client list.
type EngagementRefresher struct {
	cronScheduler  *cron.Cron
	clients        EngagementSource
	schedule       string
	runImmediately bool
	jobID          cron.EntryID
}

// NewEngagementRefresher builds the daily refresher. The schedule can be
// overridden with ENGAGEMENT_REFRESH_SCHEDULE (6-field cron expression).
func NewEngagementRefresher(clients EngagementSource, runImmediately bool) *EngagementRefresher {
	schedule := strings.TrimSpace(os.Getenv("ENGAGEMENT_REFRESH_SCHEDULE"))
	if schedule == "" {
		schedule = defaultSchedule
	}
	return &EngagementRefresher{
		cronScheduler:  cron.New(cron.WithSeconds()),
		clients:        clients,
		schedule:       schedule,
		runImmediately: runImmediately,
	}
}

// Start registers the job and kicks the scheduler off.
func (r *EngagementRefresher) Start() error {
	var err error
	r.jobID, err = r.cronScheduler.AddFunc(r.schedule, func() {
		log.Printf("[jobs][engagement] scheduled refresh starting")
		r.runRefresh()
	})
	if err != nil {
		return fmt.Errorf("error scheduling engagement refresh: %w", err)
	}

	r.cronScheduler.Start()
	log.Printf("[jobs][engagement] scheduler started schedule=%q", r.schedule)

	if r.runImmediately {
		log.Printf("[jobs][engagement] running initial refresh")
		r.runRefresh()
	}
	return nil
}

// Stop halts the scheduler. Safe to call on a never-started refresher.
func (r *EngagementRefresher) Stop() {
	if r.cronScheduler != nil {
		r.cronScheduler.Stop()
		log.Printf("[jobs][engagement] scheduler stopped")
	}
}

// RunManualRefresh executes one refresh outside the schedule.
func (r *EngagementRefresher) RunManualRefresh() {
	log.Printf("[jobs][engagement] manual refresh starting")
	r.runRefresh()
}

func (r *EngagementRefresher) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	changed, err := r.clients.RefreshEngagement(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("[jobs][engagement] refresh failed err=%v", err)
		return
	}
	log.Printf("[jobs][engagement] refresh done changed=%d", changed)
}
