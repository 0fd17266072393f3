package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// CronService logs a periodic platform-stats heartbeat so operators can
// watch catalog growth without hitting the API. The schedule comes from
// config (STATS_LOG_SCHEDULE); an empty schedule disables it.
type CronService struct {
	insights *InsightsService
	schedule string
	cron     *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(insights *InsightsService, schedule string) *CronService {
	return &CronService{
		insights: insights,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the heartbeat job and starts the scheduler
func (s *CronService) Start() {
	if s.schedule == "" {
		log.Println("⚠️ Stats heartbeat disabled (no schedule)")
		return
	}

	_, err := s.cron.AddFunc(s.schedule, s.logStats)
	if err != nil {
		log.Printf("❌ Invalid stats schedule %q: %v", s.schedule, err)
		return
	}

	s.cron.Start()
	log.Printf("🚀 Stats heartbeat scheduled: %s", s.schedule)
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Stats heartbeat stopped")
}

func (s *CronService) logStats() {
	stats := s.insights.PlatformStats()
	log.Printf("📊 Catalog stats: %d items (%d available, %d borrowed), %d total borrows, avg rating %.1f",
		stats.TotalItems, stats.AvailableItems, stats.BorrowedItems, stats.TotalBorrows, stats.AvgRating)
}
