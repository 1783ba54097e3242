// Package scheduler keeps the in-memory chat list warm with periodic
// background refreshes.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/boxpad/boxpad-api/metrics"
)

// Refresher is the loader surface the scheduler needs.
type Refresher interface {
	Reload()
}

// Scheduler handles the periodic chat-list refresh job
type Scheduler struct {
	cron  *cron.Cron
	users Refresher
	spec  string
}

// New creates a new scheduler instance
func New(users Refresher, spec string) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		users: users,
		spec:  spec,
	}
}

// Start registers the refresh job and begins the cron loop
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		zap.S().Debug("refreshing chat list")
		metrics.ChatListRefreshes.Inc()
		s.users.Reload()
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	zap.S().Infow("refresh scheduler started", "spec", s.spec)
	return nil
}

// Stop halts the cron loop; a refresh already in flight finishes on its
// own
func (s *Scheduler) Stop() {
	s.cron.Stop()
}
