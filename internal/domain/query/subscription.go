package query

import (
	"context"

	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/entity"
	"github.com/clubmate/backend/internal/ports/secondary"
)

type GetSubscription struct {
	ClubID string
}

type GetSubscriptionHandler struct {
	subscriptions secondary.SubscriptionRepository
}

func NewGetSubscriptionHandler(subscriptions secondary.SubscriptionRepository) *GetSubscriptionHandler {
	return &GetSubscriptionHandler{subscriptions: subscriptions}
}

func (h *GetSubscriptionHandler) Handle(ctx context.Context, q GetSubscription) (dto.Subscription, error) {
	subscription, err := h.subscriptions.GetByClubID(ctx, q.ClubID)
	if err != nil {
		return dto.Subscription{}, err
	}
	return dto.NewSubscriptionFromEntity(*subscription), nil
}

type ListPlans struct{}

type ListPlansHandler struct{}

func NewListPlansHandler() *ListPlansHandler {
	return &ListPlansHandler{}
}

// Handle returns the static plan catalog.
func (h *ListPlansHandler) Handle(_ context.Context, _ ListPlans) ([]dto.Plan, error) {
	catalog := entity.Plans()
	plans := make([]dto.Plan, 0, len(catalog))
	for _, plan := range catalog {
		plans = append(plans, dto.NewPlanFromEntity(plan))
	}
	return plans, nil
}
