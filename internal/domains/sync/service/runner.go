package service

import (
	"context"
	"time"

	"innkeep/config"

	"github.com/rs/zerolog/log"
)

// Runner drives the periodic inbound inventory sync. A zero or negative
// interval disables it, leaving the cron endpoint as the only trigger.
type Runner struct {
	svc      Sync
	interval time.Duration
}

func NewRunner(svc Sync, cfg *config.Config) *Runner {
	return &Runner{
		svc:      svc,
		interval: time.Duration(cfg.PMS.SyncIntervalMinutes) * time.Minute,
	}
}

// Run blocks until ctx is cancelled. Each tick runs one inventory sync; a
// failed run is logged and the ticker keeps going.
func (r *Runner) Run(ctx context.Context) {
	if r.interval <= 0 {
		log.Info().Msg("Periodic inventory sync disabled")

		return
	}

	log.Info().Dur("interval", r.interval).Msg("Starting periodic inventory sync")

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Stopping periodic inventory sync")

			return
		case <-ticker.C:
			if _, err := r.svc.SyncInventoryFromPMS(ctx); err != nil {
				log.Error().Err(err).Msg("Periodic inventory sync failed")
			}
		}
	}
}
