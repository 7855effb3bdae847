package dto

import (
	"time"

	"github.com/clubmate/backend/internal/domain/entity"
)

type Subscription struct {
	ID                 string    `json:"id"`
	ClubID             string    `json:"clubId"`
	PlanID             string    `json:"planId"`
	Status             string    `json:"status"`
	MaxTeams           *int      `json:"maxTeams"`
	Price              int64     `json:"price"`
	CurrentPeriodStart time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd   time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd  bool      `json:"cancelAtPeriodEnd"`
	Active             bool      `json:"active"`
}

func NewSubscriptionFromEntity(subscription entity.Subscription) Subscription {
	return Subscription{
		ID:                 subscription.ID,
		ClubID:             subscription.ClubID,
		PlanID:             string(subscription.PlanID),
		Status:             string(subscription.Status),
		MaxTeams:           subscription.MaxTeams,
		Price:              subscription.Price,
		CurrentPeriodStart: subscription.CurrentPeriodStart,
		CurrentPeriodEnd:   subscription.CurrentPeriodEnd,
		CancelAtPeriodEnd:  subscription.CancelAtPeriodEnd,
		Active:             subscription.IsActive(),
	}
}

type Plan struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	MaxTeams *int   `json:"maxTeams"`
}

func NewPlanFromEntity(plan entity.Plan) Plan {
	return Plan{
		ID:       string(plan.ID),
		Name:     plan.Name,
		Price:    plan.Price,
		MaxTeams: plan.MaxTeams,
	}
}
