package entity

import (
	"time"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

type InvitationType string

const (
	InvitationPlayer         InvitationType = "PLAYER"
	InvitationAssistantCoach InvitationType = "ASSISTANT_COACH"
)

const DefaultInvitationTTLDays = 7

// Invitation is a single-use join link for a club. The token, not the id,
// is the external lookup key. Expiry is computed from ExpiresAt, never
// stored as a status.
type Invitation struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	Token     string         `gorm:"not null;uniqueIndex"`
	ClubID    string         `gorm:"not null;type:uuid;index"`
	Type      InvitationType `gorm:"not null"`
	CreatedBy string         `gorm:"not null"`
	ExpiresAt time.Time      `gorm:"not null"`
	UsedAt    *time.Time
	UsedBy    *string
}

// NewInvitation creates an invitation expiring expiresInDays from now.
// Zero expiresInDays picks the default of 7 days. Token generation is the
// caller's responsibility; the entity only requires it to be non-empty.
func NewInvitation(id, token, clubID string, invType InvitationType, createdBy string, expiresInDays int) (*Invitation, error) {
	if token == "" {
		return nil, errorz.Validation("invitation token is required")
	}
	if clubID == "" {
		return nil, errorz.Validation("invitation club is required")
	}
	if createdBy == "" {
		return nil, errorz.Validation("invitation creator is required")
	}
	if invType != InvitationPlayer && invType != InvitationAssistantCoach {
		return nil, errorz.Validation("unknown invitation type: " + string(invType))
	}
	if expiresInDays < 0 {
		return nil, errorz.Validation("invitation expiry cannot be negative")
	}
	if expiresInDays == 0 {
		expiresInDays = DefaultInvitationTTLDays
	}

	return &Invitation{
		ID:        id,
		Token:     token,
		ClubID:    clubID,
		Type:      invType,
		CreatedBy: createdBy,
		ExpiresAt: time.Now().AddDate(0, 0, expiresInDays),
	}, nil
}

// IsExpired is strict: an invitation expiring at exactly now is not yet
// expired.
func (i *Invitation) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}

func (i *Invitation) IsUsed() bool {
	return i.UsedAt != nil
}

func (i *Invitation) IsValid() bool {
	return !i.IsExpired() && !i.IsUsed()
}

// MarkAsUsed consumes the invitation for the given user. It fails once the
// invitation has been used or has expired; use is never undone.
func (i *Invitation) MarkAsUsed(userID string) error {
	if i.IsUsed() {
		return errorz.InvalidState("Invitation has already been used")
	}
	if i.IsExpired() {
		return errorz.InvalidState("Invitation has expired")
	}
	now := time.Now()
	i.UsedAt = &now
	i.UsedBy = &userID
	return nil
}

// ValidateUserIsNotCreator rejects a coach accepting their own join link.
func (i *Invitation) ValidateUserIsNotCreator(userID string) error {
	if userID == i.CreatedBy {
		return errorz.Validation("You cannot accept your own invitation")
	}
	return nil
}

// GetRemainingDays returns the days until expiry, rounded up and floored
// at zero.
func (i *Invitation) GetRemainingDays() int {
	remaining := time.Until(i.ExpiresAt)
	if remaining <= 0 {
		return 0
	}
	days := int(remaining / (24 * time.Hour))
	if remaining%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// MemberRole maps the invitation type to the role the accepting user gets.
func (i *Invitation) MemberRole() MemberRole {
	if i.Type == InvitationAssistantCoach {
		return RoleAssistantCoach
	}
	return RolePlayer
}
