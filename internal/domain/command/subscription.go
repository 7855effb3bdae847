package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/entity"
	"github.com/clubmate/backend/internal/ports/secondary"
)

type Subscribe struct {
	ClubID       string
	PlanID       entity.PlanID
	BillingEmail string
}

// SubscribeResult carries the subscription plus, for paid plans, the
// checkout URL the club owner is sent to.
type SubscribeResult struct {
	Subscription dto.Subscription `json:"subscription"`
	CheckoutURL  string           `json:"checkoutUrl,omitempty"`
}

type SubscribeHandler struct {
	clubs         secondary.ClubRepository
	subscriptions secondary.SubscriptionRepository
	payments      secondary.PaymentProvider
}

func NewSubscribeHandler(clubs secondary.ClubRepository, subscriptions secondary.SubscriptionRepository, payments secondary.PaymentProvider) *SubscribeHandler {
	return &SubscribeHandler{
		clubs:         clubs,
		subscriptions: subscriptions,
		payments:      payments,
	}
}

func (h *SubscribeHandler) Handle(ctx context.Context, cmd Subscribe) (SubscribeResult, error) {
	if _, err := h.clubs.Get(ctx, cmd.ClubID); err != nil {
		return SubscribeResult{}, err
	}

	existing, err := h.subscriptions.GetByClubID(ctx, cmd.ClubID)
	if err != nil && !errorz.IsNotFound(err) {
		return SubscribeResult{}, err
	}
	if existing != nil && existing.Status != entity.SubscriptionCanceled {
		return SubscribeResult{}, errorz.Conflict("club already has a subscription")
	}

	plan, err := entity.PlanByID(cmd.PlanID)
	if err != nil {
		return SubscribeResult{}, err
	}

	var refs entity.ExternalRefs
	var checkoutURL string
	if !plan.IsFree() && h.payments != nil {
		customerID, errPay := h.payments.CreateCustomer(ctx, cmd.BillingEmail)
		if errPay != nil {
			return SubscribeResult{}, errPay
		}
		checkoutURL, errPay = h.payments.CreateCheckoutSession(ctx, customerID, string(plan.ID))
		if errPay != nil {
			return SubscribeResult{}, errPay
		}
		refs.CustomerID = customerID
	}

	subscription, err := entity.NewSubscription(uuid.New().String(), cmd.ClubID, plan, refs)
	if err != nil {
		return SubscribeResult{}, err
	}
	subscription, err = h.subscriptions.Create(ctx, subscription)
	if err != nil {
		return SubscribeResult{}, err
	}

	return SubscribeResult{
		Subscription: dto.NewSubscriptionFromEntity(*subscription),
		CheckoutURL:  checkoutURL,
	}, nil
}

type UpgradeSubscription struct {
	ClubID string
	PlanID entity.PlanID
}

type UpgradeSubscriptionHandler struct {
	subscriptions secondary.SubscriptionRepository
}

func NewUpgradeSubscriptionHandler(subscriptions secondary.SubscriptionRepository) *UpgradeSubscriptionHandler {
	return &UpgradeSubscriptionHandler{subscriptions: subscriptions}
}

func (h *UpgradeSubscriptionHandler) Handle(ctx context.Context, cmd UpgradeSubscription) (dto.Subscription, error) {
	subscription, err := h.subscriptions.GetByClubID(ctx, cmd.ClubID)
	if err != nil {
		return dto.Subscription{}, err
	}

	plan, err := entity.PlanByID(cmd.PlanID)
	if err != nil {
		return dto.Subscription{}, err
	}
	if err = subscription.Upgrade(plan); err != nil {
		return dto.Subscription{}, err
	}

	subscription, err = h.subscriptions.Update(ctx, subscription)
	if err != nil {
		return dto.Subscription{}, err
	}
	return dto.NewSubscriptionFromEntity(*subscription), nil
}

type CancelSubscription struct {
	ClubID string
	// ReturnURL is where the billing portal sends the user back to.
	ReturnURL string
}

// CancelSubscriptionResult carries the updated subscription and, for paid
// plans, a billing-portal URL where the provider-side cancellation is
// finalized.
type CancelSubscriptionResult struct {
	Subscription     dto.Subscription `json:"subscription"`
	BillingPortalURL string           `json:"billingPortalUrl,omitempty"`
}

type CancelSubscriptionHandler struct {
	subscriptions secondary.SubscriptionRepository
	payments      secondary.PaymentProvider
}

func NewCancelSubscriptionHandler(subscriptions secondary.SubscriptionRepository, payments secondary.PaymentProvider) *CancelSubscriptionHandler {
	return &CancelSubscriptionHandler{
		subscriptions: subscriptions,
		payments:      payments,
	}
}

// Handle cancels the club's subscription. An already-canceled subscription
// fails before any write.
func (h *CancelSubscriptionHandler) Handle(ctx context.Context, cmd CancelSubscription) (CancelSubscriptionResult, error) {
	subscription, err := h.subscriptions.GetByClubID(ctx, cmd.ClubID)
	if err != nil {
		return CancelSubscriptionResult{}, err
	}

	wasPaid := subscription.Price > 0
	if err = subscription.Cancel(); err != nil {
		return CancelSubscriptionResult{}, err
	}
	subscription, err = h.subscriptions.Update(ctx, subscription)
	if err != nil {
		return CancelSubscriptionResult{}, err
	}

	var portalURL string
	if wasPaid && h.payments != nil && subscription.ExternalCustomerID != "" {
		portalURL, err = h.payments.CreateBillingPortalSession(ctx, subscription.ExternalCustomerID, cmd.ReturnURL)
		if err != nil {
			return CancelSubscriptionResult{}, err
		}
	}

	return CancelSubscriptionResult{
		Subscription:     dto.NewSubscriptionFromEntity(*subscription),
		BillingPortalURL: portalURL,
	}, nil
}
