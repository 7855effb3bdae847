package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/clubmate/backend/internal/domain/command"
	"github.com/clubmate/backend/pkg/logger/types"
)

// Scheduler runs the periodic maintenance jobs. Currently that is the
// nightly sweep of expired, unused invitations.
type Scheduler struct {
	logger *types.Logger
	cron   *cron.Cron

	cleanupInvitations *command.CleanupInvitationsHandler
}

func New(logger *types.Logger, cleanupInvitations *command.CleanupInvitationsHandler) *Scheduler {
	return &Scheduler{
		logger:             logger,
		cron:               cron.New(),
		cleanupInvitations: cleanupInvitations,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		deleted, errCleanup := s.cleanupInvitations.Handle(context.Background(), command.CleanupInvitations{})
		if errCleanup != nil {
			s.logger.Errorf("invitation cleanup failed: %v", errCleanup)
			return
		}
		s.logger.Infof("invitation cleanup finished, %d deleted", deleted)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started")
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
}
