package secondary

import (
	"context"

	"github.com/clubmate/backend/internal/domain/entity"
)

// SubscriptionRepository defines the persistence operations for subscriptions.
// Subscriptions are never deleted; end-of-life is a status transition.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error)
	Get(ctx context.Context, id string) (*entity.Subscription, error)
	GetByClubID(ctx context.Context, clubID string) (*entity.Subscription, error)
	Update(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error)
}
