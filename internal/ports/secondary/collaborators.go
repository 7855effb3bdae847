package secondary

import "context"

// PaymentProvider is the billing collaborator. The domain never calls the
// provider from an entity; command handlers use it to open checkout and
// billing-portal sessions, and the transport layer uses VerifyWebhook before
// reacting to provider events.
type PaymentProvider interface {
	CreateCustomer(ctx context.Context, email string) (string, error)
	CreateCheckoutSession(ctx context.Context, customerID, planID string) (string, error)
	CreateBillingPortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	VerifyWebhook(payload []byte, signature string) error
}

// MailClient delivers invitation emails. Delivery failures are logged, not
// propagated; an invitation is usable whether or not the mail arrives.
type MailClient interface {
	SendInvitationEmail(to, clubName, joinLink string)
}

// TeamCounter reports how many teams a club currently has. Teams themselves
// are managed outside this layer.
type TeamCounter interface {
	CountByClubID(ctx context.Context, clubID string) (int64, error)
}
