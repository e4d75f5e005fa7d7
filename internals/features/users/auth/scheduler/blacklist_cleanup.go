// file: internals/features/users/auth/scheduler/blacklist_cleanup.go
package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"
)

const cleanupInterval = time.Hour

// StartBlacklistCleanupScheduler sweeps expired blacklist entries and
// refresh tokens in the background for the lifetime of the process.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			if res := db.Exec("DELETE FROM token_blacklist WHERE token_blacklist_expires_at <= ?", now); res.Error != nil {
				log.Printf("[WARN] blacklist cleanup: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[INFO] blacklist cleanup removed %d rows", res.RowsAffected)
			}

			if res := db.Exec("DELETE FROM refresh_tokens WHERE refresh_token_expires_at <= ?", now); res.Error != nil {
				log.Printf("[WARN] refresh token cleanup: %v", res.Error)
			}
		}
	}()
}
