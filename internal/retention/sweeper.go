package retention

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	db "github.com/minhnq/campushub-BE/internal/db/sqlc"
	"github.com/rs/zerolog/log"
)

// Sweeper periodically deletes read notifications older than maxAge so the
// notifications table does not grow without bound.
type Sweeper struct {
	store     db.Store
	scheduler gocron.Scheduler
	maxAge    time.Duration
	interval  time.Duration
}

func NewSweeper(store db.Store, maxAge, interval time.Duration) (*Sweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &Sweeper{
		store:     store,
		scheduler: scheduler,
		maxAge:    maxAge,
		interval:  interval,
	}, nil
}

// Start begins the periodic sweep job.
func (s *Sweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(
			func() {
				s.sweep()
			},
		),
	)

	if err != nil {
		return err
	}

	s.scheduler.Start()
	return nil
}

// Stop shuts down the scheduler.
func (s *Sweeper) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Sweeper) sweep() {
	cutoff := time.Now().Add(-s.maxAge)

	deleted, err := s.store.DeleteReadNotificationsBefore(context.Background(), cutoff)
	if err != nil {
		log.Error().Err(err).Msg("notification retention sweep failed")
		return
	}

	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("purged read notifications")
	}
}
