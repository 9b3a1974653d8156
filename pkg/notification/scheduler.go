package notification

import (
	"context"
	"log"
	"time"
)

// StartScheduler runs periodic expiry sweeps until ctx is cancelled. One
// sweep runs immediately on start so a restart never skips a day.
func StartScheduler(ctx context.Context, service NotificationService, interval time.Duration) {
	if interval <= 0 {
		interval = 12 * time.Hour
	}

	go func() {
		if err := service.CheckAndNotify(ctx); err != nil {
			log.Printf("expiry notification sweep failed: %v", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := service.CheckAndNotify(ctx); err != nil {
					log.Printf("expiry notification sweep failed: %v", err)
				}
			}
		}
	}()
}
