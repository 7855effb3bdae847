package command

import (
	"context"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/entity"
	"github.com/clubmate/backend/internal/ports/secondary"
)

type RemoveMember struct {
	ClubID    string
	UserID    string
	RemovedBy string
}

type RemoveMemberHandler struct {
	members secondary.MemberRepository
}

func NewRemoveMemberHandler(members secondary.MemberRepository) *RemoveMemberHandler {
	return &RemoveMemberHandler{members: members}
}

// Handle soft-deletes a membership. The row is kept for history; only the
// active flag and LeftAt change.
func (h *RemoveMemberHandler) Handle(ctx context.Context, cmd RemoveMember) (struct{}, error) {
	if cmd.RemovedBy == cmd.UserID {
		return struct{}{}, errorz.Validation("you cannot remove yourself from the club")
	}

	member, err := h.members.GetActive(ctx, cmd.ClubID, cmd.UserID)
	if err != nil {
		return struct{}{}, err
	}
	if member.Role == entity.RoleOwner {
		return struct{}{}, errorz.Validation("the club owner cannot be removed")
	}

	if err = member.Deactivate(); err != nil {
		return struct{}{}, err
	}
	_, err = h.members.Update(ctx, member)
	return struct{}{}, err
}
