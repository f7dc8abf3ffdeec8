// services/scheduler.go
package services

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartRebuildScheduler repairs the leaderboard cache every minute, so lost
// best-effort bumps converge back to the users table.
func (s *LeaderboardService) StartRebuildScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.Rebuild(ctx); err != nil {
				log.Printf("[Scheduler] leaderboard rebuild failed: %v", err)
			}
		}),
	)
}
