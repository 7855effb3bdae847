package entity

import (
	"time"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "ACTIVE"
	SubscriptionPastDue  SubscriptionStatus = "PAST_DUE"
	SubscriptionCanceled SubscriptionStatus = "CANCELED"
)

// ExternalRefs holds the payment provider identifiers for a subscription.
// Both are opaque to this layer.
type ExternalRefs struct {
	CustomerID     string
	SubscriptionID string
}

// Subscription tracks the billing state of a club. There is at most one
// per club; end-of-life is modeled by the status, rows are never deleted.
type Subscription struct {
	ID                   string `gorm:"primaryKey;type:uuid"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
	ClubID               string             `gorm:"not null;type:uuid;index"`
	PlanID               PlanID             `gorm:"not null"`
	Status               SubscriptionStatus `gorm:"not null"`
	MaxTeams             *int
	Price                int64
	ExternalCustomerID   string
	ExternalSubscription string
	CurrentPeriodStart   time.Time
	CurrentPeriodEnd     time.Time
	CancelAtPeriodEnd    bool
}

// NewSubscription creates an active subscription with a one-month billing
// window starting now.
func NewSubscription(id, clubID string, plan Plan, refs ExternalRefs) (*Subscription, error) {
	if clubID == "" {
		return nil, errorz.Validation("subscription club is required")
	}
	if plan.Price < 0 {
		return nil, errorz.Validation("subscription price cannot be negative")
	}
	if plan.MaxTeams != nil && *plan.MaxTeams < 0 {
		return nil, errorz.Validation("subscription team limit cannot be negative")
	}

	now := time.Now()
	return &Subscription{
		ID:                   id,
		ClubID:               clubID,
		PlanID:               plan.ID,
		Status:               SubscriptionActive,
		MaxTeams:             plan.MaxTeams,
		Price:                plan.Price,
		ExternalCustomerID:   refs.CustomerID,
		ExternalSubscription: refs.SubscriptionID,
		CurrentPeriodStart:   now,
		CurrentPeriodEnd:     now.AddDate(0, 1, 0),
	}, nil
}

// Cancel ends the subscription. A free plan is canceled immediately; a paid
// plan stays active until the end of the billing period, mirroring how the
// payment provider defers cancellation.
func (s *Subscription) Cancel() error {
	if s.Status == SubscriptionCanceled {
		return errorz.InvalidState("subscription is already canceled")
	}
	if s.Price == 0 {
		s.Status = SubscriptionCanceled
		return nil
	}
	s.CancelAtPeriodEnd = true
	return nil
}

// Upgrade replaces the plan, team limit and price. Downgrade consequences
// (clubs over the new team limit) are the limit service's concern.
func (s *Subscription) Upgrade(plan Plan) error {
	if s.Status == SubscriptionCanceled {
		return errorz.InvalidState("cannot change the plan of a canceled subscription")
	}
	s.PlanID = plan.ID
	s.MaxTeams = plan.MaxTeams
	s.Price = plan.Price
	return nil
}

// Renew moves the billing window forward. Called when the payment provider
// reports a successful renewal.
func (s *Subscription) Renew(periodStart, periodEnd time.Time) error {
	if s.Status == SubscriptionCanceled {
		return errorz.InvalidState("cannot renew a canceled subscription")
	}
	s.Status = SubscriptionActive
	s.CurrentPeriodStart = periodStart
	s.CurrentPeriodEnd = periodEnd
	return nil
}

// MarkPastDue records a failed renewal reported by the payment provider.
func (s *Subscription) MarkPastDue() {
	if s.Status == SubscriptionActive {
		s.Status = SubscriptionPastDue
	}
}

func (s *Subscription) HasUnlimitedTeams() bool {
	return s.MaxTeams == nil
}

// IsActive reports whether the club currently enjoys the plan's benefits:
// the status must be active and the billing period must not be over.
func (s *Subscription) IsActive() bool {
	if s.Status != SubscriptionActive {
		return false
	}
	if s.CurrentPeriodEnd.IsZero() {
		return true
	}
	return !time.Now().After(s.CurrentPeriodEnd)
}
