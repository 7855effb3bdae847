package query

import (
	"context"
	"fmt"

	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/ports/secondary"
	qr "github.com/clubmate/backend/pkg/qrcode"
)

type ValidateInvitation struct {
	Token string
}

type ValidateInvitationHandler struct {
	invitations secondary.InvitationRepository
}

func NewValidateInvitationHandler(invitations secondary.InvitationRepository) *ValidateInvitationHandler {
	return &ValidateInvitationHandler{invitations: invitations}
}

// Handle reports the invitation status without consuming it. Used beats
// expired: an invitation that is both reports "used".
func (h *ValidateInvitationHandler) Handle(ctx context.Context, q ValidateInvitation) (dto.InvitationValidation, error) {
	invitation, err := h.invitations.GetByToken(ctx, q.Token)
	if err != nil {
		return dto.InvitationValidation{}, err
	}
	return dto.NewInvitationValidation(*invitation), nil
}

type InvitationQR struct {
	Token string
}

type InvitationQRHandler struct {
	invitations secondary.InvitationRepository

	qrConfig     qr.Config
	joinLinkBase string
}

func NewInvitationQRHandler(invitations secondary.InvitationRepository, qrConfig qr.Config, joinLinkBase string) *InvitationQRHandler {
	return &InvitationQRHandler{
		invitations:  invitations,
		qrConfig:     qrConfig,
		joinLinkBase: joinLinkBase,
	}
}

// Handle renders the join link of an invitation as a PNG QR code.
func (h *InvitationQRHandler) Handle(ctx context.Context, q InvitationQR) ([]byte, error) {
	invitation, err := h.invitations.GetByToken(ctx, q.Token)
	if err != nil {
		return nil, err
	}

	cfg := h.qrConfig
	cfg.Content = fmt.Sprintf("%s/join/%s", h.joinLinkBase, invitation.Token)
	return cfg.Generate()
}
