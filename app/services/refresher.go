package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/RobTisdell/robtisdell.git.io/app/sources"
)

// StartRefresher runs an immediate source refresh and then keeps the
// store warm on the configured cron schedule, so page loads normally hit
// a populated cache instead of paying fetch latency.
func StartRefresher(store *sources.Store, spec string) *cron.Cron {
	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := store.Refresh(ctx); err != nil {
			log.Printf("source refresh: %v", err)
		}
	}

	refresh()

	c := cron.New()
	if _, err := c.AddFunc(spec, refresh); err != nil {
		log.Printf("invalid refresh cron spec %q, background refresh disabled: %v", spec, err)
		return c
	}
	c.Start()
	log.Printf("source refresher started (%s)", spec)
	return c
}
