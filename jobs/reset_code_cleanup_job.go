package jobs

import (
	"fmt"
	"time"

	"pulse-afisha-api/repositories"
)

// ResetCodeCleanupJob handles periodic removal of expired password reset codes
type ResetCodeCleanupJob struct {
	store  *repositories.MemoryResetCodeStore
	ticker *time.Ticker
	done   chan bool
}

// NewResetCodeCleanupJob creates a new reset code cleanup job
func NewResetCodeCleanupJob(store *repositories.MemoryResetCodeStore, interval time.Duration) *ResetCodeCleanupJob {
	return &ResetCodeCleanupJob{
		store:  store,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

// Start begins the cleanup job
func (j *ResetCodeCleanupJob) Start() {
	fmt.Println("Reset code cleanup job started")

	go func() {
		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				fmt.Println("Reset code cleanup job stopped")
				return
			}
		}
	}()
}

// Stop stops the cleanup job
func (j *ResetCodeCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *ResetCodeCleanupJob) cleanup() {
	removed := j.store.CleanupExpired()
	if removed > 0 {
		fmt.Printf("Removed %d expired password reset codes\n", removed)
	}
}
