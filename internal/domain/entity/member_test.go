package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

func TestMemberRole(t *testing.T) {
	assert.True(t, RoleCoach.Valid())
	assert.False(t, MemberRole("JANITOR").Valid())

	assert.True(t, RoleOwner.CanManageMembers())
	assert.True(t, RoleCoach.CanManageMembers())
	assert.True(t, RoleAssistantCoach.CanManageMembers())
	assert.False(t, RolePlayer.CanManageMembers())
}

func TestMember_Deactivate(t *testing.T) {
	member, err := NewMember("m-1", "user-1", "club-1", RolePlayer, nil)
	require.NoError(t, err)
	require.True(t, member.IsActive)

	require.NoError(t, member.Deactivate())
	assert.False(t, member.IsActive)
	assert.NotNil(t, member.LeftAt)

	assert.True(t, errorz.IsInvalidState(member.Deactivate()))
}

func TestNewMember_Validation(t *testing.T) {
	_, err := NewMember("m-1", "", "club-1", RolePlayer, nil)
	assert.True(t, errorz.IsValidation(err))

	_, err = NewMember("m-1", "user-1", "club-1", MemberRole("JANITOR"), nil)
	assert.True(t, errorz.IsValidation(err))
}
