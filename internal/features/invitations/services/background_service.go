package invitations_services

import (
	"log/slog"
	"time"

	invitations_repositories "tofu-workspaces-backend/internal/features/invitations/repositories"

	"github.com/robfig/cron/v3"
)

// InvitationBackgroundService prunes invitations that were never
// consumed within the configured TTL.
type InvitationBackgroundService struct {
	invitationRepository *invitations_repositories.InvitationRepository
	logger               *slog.Logger
	ttlDays              int

	cron *cron.Cron
}

// Run starts the nightly sweep. It returns immediately; the cron
// scheduler owns the goroutine.
func (s *InvitationBackgroundService) Run() {
	s.cron = cron.New()

	_, err := s.cron.AddFunc("@daily", s.sweep)
	if err != nil {
		s.logger.Error("Failed to schedule invitation sweep", "error", err)
		return
	}

	s.cron.Start()
}

func (s *InvitationBackgroundService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *InvitationBackgroundService) sweep() {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.ttlDays)

	removed, err := s.invitationRepository.DeleteStaleUnconsumed(cutoff)
	if err != nil {
		s.logger.Error("Failed to prune stale invitations", "error", err)
		return
	}

	if removed > 0 {
		s.logger.Info("Pruned stale invitations", "count", removed, "cutoff", cutoff)
	}
}
