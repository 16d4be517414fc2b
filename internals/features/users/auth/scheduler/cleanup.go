package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"sponsorship_backend/internals/features/users/auth/session"
)

const cleanupTimeout = time.Minute

// RunSessionCleanup removes every session that expired at or before now.
func RunSessionCleanup(ctx context.Context, store session.Store, now time.Time) (int64, error) {
	n, err := store.DeleteExpired(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	if n > 0 {
		log.Printf("[CLEANUP] %d expired sessions removed", n)
	}
	return n, nil
}

// StartSessionCleanupScheduler runs RunSessionCleanup on spec. The caller
// owns the returned cron and stops it on shutdown.
func StartSessionCleanupScheduler(store session.Store, spec string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
		defer cancel()
		if _, err := RunSessionCleanup(ctx, store, time.Now().UTC()); err != nil {
			log.Printf("[CLEANUP ERROR] %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule session cleanup %q: %w", spec, err)
	}

	log.Printf("[CLEANUP] session cleanup scheduled %q", spec)
	c.Start()
	return c, nil
}
