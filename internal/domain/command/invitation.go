package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/entity"
	"github.com/clubmate/backend/internal/domain/utils/token"
	"github.com/clubmate/backend/internal/ports/secondary"
	"github.com/clubmate/backend/pkg/logger/types"
)

type GenerateInvitation struct {
	ClubID        string
	Type          entity.InvitationType
	CreatedBy     string
	ExpiresInDays int
	// Email, when set, receives the join link.
	Email string
}

type GenerateInvitationHandler struct {
	logger *types.Logger

	clubs       secondary.ClubRepository
	members     secondary.MemberRepository
	invitations secondary.InvitationRepository
	mail        secondary.MailClient

	joinLinkBase string
}

func NewGenerateInvitationHandler(
	logger *types.Logger,
	clubs secondary.ClubRepository,
	members secondary.MemberRepository,
	invitations secondary.InvitationRepository,
	mail secondary.MailClient,
	joinLinkBase string,
) *GenerateInvitationHandler {
	return &GenerateInvitationHandler{
		logger:       logger,
		clubs:        clubs,
		members:      members,
		invitations:  invitations,
		mail:         mail,
		joinLinkBase: joinLinkBase,
	}
}

// Handle issues a single-use join link. The token is minted here, not in the
// entity; the storage's unique token index is the collision backstop.
func (h *GenerateInvitationHandler) Handle(ctx context.Context, cmd GenerateInvitation) (dto.GeneratedInvitation, error) {
	club, err := h.clubs.Get(ctx, cmd.ClubID)
	if err != nil {
		return dto.GeneratedInvitation{}, err
	}

	creator, err := h.members.GetActive(ctx, cmd.ClubID, cmd.CreatedBy)
	if err != nil {
		return dto.GeneratedInvitation{}, err
	}
	if !creator.Role.CanManageMembers() {
		return dto.GeneratedInvitation{}, errorz.Validation("only coaches can invite members")
	}

	inviteToken, err := token.Generate(token.Length)
	if err != nil {
		return dto.GeneratedInvitation{}, err
	}
	invitation, err := entity.NewInvitation(uuid.New().String(), inviteToken, cmd.ClubID, cmd.Type, cmd.CreatedBy, cmd.ExpiresInDays)
	if err != nil {
		return dto.GeneratedInvitation{}, err
	}
	invitation, err = h.invitations.Create(ctx, invitation)
	if err != nil {
		return dto.GeneratedInvitation{}, err
	}

	joinLink := fmt.Sprintf("%s/join/%s", h.joinLinkBase, invitation.Token)
	if cmd.Email != "" && h.mail != nil {
		h.mail.SendInvitationEmail(cmd.Email, club.Name, joinLink)
		h.logger.Infof("invitation email queued for club %s", club.ID)
	}

	return dto.GeneratedInvitation{
		ID:        invitation.ID,
		Token:     invitation.Token,
		JoinLink:  joinLink,
		ExpiresAt: invitation.ExpiresAt.Format(time.RFC3339),
	}, nil
}

type AcceptInvitation struct {
	Token  string
	UserID string
}

type AcceptInvitationHandler struct {
	invitations secondary.InvitationRepository
	members     secondary.MemberRepository
}

func NewAcceptInvitationHandler(invitations secondary.InvitationRepository, members secondary.MemberRepository) *AcceptInvitationHandler {
	return &AcceptInvitationHandler{
		invitations: invitations,
		members:     members,
	}
}

// Handle consumes the invitation and creates the membership. The invitation
// is marked used first; the storage's conditional update keeps two
// concurrent acceptances from both succeeding.
func (h *AcceptInvitationHandler) Handle(ctx context.Context, cmd AcceptInvitation) (dto.Member, error) {
	invitation, err := h.invitations.GetByToken(ctx, cmd.Token)
	if err != nil {
		return dto.Member{}, err
	}

	if err = invitation.ValidateUserIsNotCreator(cmd.UserID); err != nil {
		return dto.Member{}, err
	}

	existing, err := h.members.GetActive(ctx, invitation.ClubID, cmd.UserID)
	if err != nil && !errorz.IsNotFound(err) {
		return dto.Member{}, err
	}
	if existing != nil {
		return dto.Member{}, errorz.Conflict("user is already a member of this club")
	}

	if err = invitation.MarkAsUsed(cmd.UserID); err != nil {
		return dto.Member{}, err
	}
	if _, err = h.invitations.Update(ctx, invitation); err != nil {
		return dto.Member{}, err
	}

	member, err := entity.NewMember(uuid.New().String(), cmd.UserID, invitation.ClubID, invitation.MemberRole(), &invitation.CreatedBy)
	if err != nil {
		return dto.Member{}, err
	}
	member, err = h.members.Create(ctx, member)
	if err != nil {
		return dto.Member{}, err
	}

	return dto.NewMemberFromEntity(*member), nil
}

type DeleteInvitation struct {
	Token string
}

type DeleteInvitationHandler struct {
	invitations secondary.InvitationRepository
}

func NewDeleteInvitationHandler(invitations secondary.InvitationRepository) *DeleteInvitationHandler {
	return &DeleteInvitationHandler{invitations: invitations}
}

func (h *DeleteInvitationHandler) Handle(ctx context.Context, cmd DeleteInvitation) (struct{}, error) {
	invitation, err := h.invitations.GetByToken(ctx, cmd.Token)
	if err != nil {
		return struct{}{}, err
	}
	return struct{}{}, h.invitations.Delete(ctx, invitation.ID)
}

type CleanupInvitations struct{}

type CleanupInvitationsHandler struct {
	logger      *types.Logger
	invitations secondary.InvitationRepository
}

func NewCleanupInvitationsHandler(logger *types.Logger, invitations secondary.InvitationRepository) *CleanupInvitationsHandler {
	return &CleanupInvitationsHandler{
		logger:      logger,
		invitations: invitations,
	}
}

// Handle sweeps expired invitations and returns the deleted count.
func (h *CleanupInvitationsHandler) Handle(ctx context.Context, _ CleanupInvitations) (int64, error) {
	deleted, err := h.invitations.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		h.logger.Infof("deleted %d expired invitations", deleted)
	}
	return deleted, nil
}
