package dto

import "github.com/clubmate/backend/internal/domain/entity"

const (
	InvitationStatusValid   = "valid"
	InvitationStatusExpired = "expired"
	InvitationStatusUsed    = "used"
)

// InvitationValidation is the read model of the validate-invitation query.
type InvitationValidation struct {
	Token         string `json:"token"`
	ClubID        string `json:"clubId"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	RemainingDays int    `json:"remainingDays"`
}

// NewInvitationValidation derives the status with used taking precedence
// over expired: an invitation that is both reports "used".
func NewInvitationValidation(invitation entity.Invitation) InvitationValidation {
	status := InvitationStatusValid
	switch {
	case invitation.IsUsed():
		status = InvitationStatusUsed
	case invitation.IsExpired():
		status = InvitationStatusExpired
	}
	return InvitationValidation{
		Token:         invitation.Token,
		ClubID:        invitation.ClubID,
		Type:          string(invitation.Type),
		Status:        status,
		RemainingDays: invitation.GetRemainingDays(),
	}
}

// GeneratedInvitation is returned by the generate-invitation command.
type GeneratedInvitation struct {
	ID        string `json:"id"`
	Token     string `json:"token"`
	JoinLink  string `json:"joinLink"`
	ExpiresAt string `json:"expiresAt"`
}
