package entity

import (
	"time"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

type MemberRole string

const (
	RoleOwner          MemberRole = "OWNER"
	RoleCoach          MemberRole = "COACH"
	RoleAssistantCoach MemberRole = "ASSISTANT_COACH"
	RolePlayer         MemberRole = "PLAYER"
)

func (r MemberRole) Valid() bool {
	switch r {
	case RoleOwner, RoleCoach, RoleAssistantCoach, RolePlayer:
		return true
	}
	return false
}

// CanManageMembers reports whether the role may invite and remove members.
func (r MemberRole) CanManageMembers() bool {
	return r == RoleOwner || r == RoleCoach || r == RoleAssistantCoach
}

// Member ties a user to a club with a role. Removal is a soft delete:
// the row stays for history, IsActive flips and LeftAt is set.
type Member struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string `gorm:"not null;index:idx_members_user_club"`
	ClubID    string `gorm:"not null;type:uuid;index:idx_members_user_club"`
	Role      MemberRole
	JoinedAt  time.Time `gorm:"not null"`
	LeftAt    *time.Time
	InvitedBy *string
	IsActive  bool `gorm:"not null;default:true"`
}

func NewMember(id, userID, clubID string, role MemberRole, invitedBy *string) (*Member, error) {
	if userID == "" {
		return nil, errorz.Validation("member user is required")
	}
	if clubID == "" {
		return nil, errorz.Validation("member club is required")
	}
	if !role.Valid() {
		return nil, errorz.Validation("unknown member role: " + string(role))
	}
	return &Member{
		ID:        id,
		UserID:    userID,
		ClubID:    clubID,
		Role:      role,
		JoinedAt:  time.Now(),
		InvitedBy: invitedBy,
		IsActive:  true,
	}, nil
}

// Deactivate soft-deletes the membership.
func (m *Member) Deactivate() error {
	if !m.IsActive {
		return errorz.InvalidState("member is not active")
	}
	now := time.Now()
	m.IsActive = false
	m.LeftAt = &now
	return nil
}
