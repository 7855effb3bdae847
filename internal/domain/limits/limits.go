package limits

import (
	"context"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/ports/secondary"
)

// Service answers whether a club may create one more team under its current
// subscription plan. Team creation itself happens outside this layer; the
// callers only need the boolean answer.
type Service struct {
	subscriptions secondary.SubscriptionRepository
	teams         secondary.TeamCounter
}

func NewService(subscriptions secondary.SubscriptionRepository, teams secondary.TeamCounter) *Service {
	return &Service{
		subscriptions: subscriptions,
		teams:         teams,
	}
}

// CanCreateTeam checks the club's plan ceiling. A club without an active
// subscription may not create teams.
func (s *Service) CanCreateTeam(ctx context.Context, clubID string) (bool, error) {
	subscription, err := s.subscriptions.GetByClubID(ctx, clubID)
	if err != nil {
		if errorz.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	if !subscription.IsActive() {
		return false, nil
	}
	if subscription.HasUnlimitedTeams() {
		return true, nil
	}

	count, err := s.teams.CountByClubID(ctx, clubID)
	if err != nil {
		return false, err
	}
	return count < int64(*subscription.MaxTeams), nil
}
