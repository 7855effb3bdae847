package query

import (
	"context"

	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/utils/export"
	"github.com/clubmate/backend/internal/ports/secondary"
)

type ListMembers struct {
	ClubID string
}

type ListMembersHandler struct {
	clubs   secondary.ClubRepository
	members secondary.MemberRepository
}

func NewListMembersHandler(clubs secondary.ClubRepository, members secondary.MemberRepository) *ListMembersHandler {
	return &ListMembersHandler{
		clubs:   clubs,
		members: members,
	}
}

// Handle lists the active members of a club; soft-deleted rows stay out.
func (h *ListMembersHandler) Handle(ctx context.Context, q ListMembers) ([]dto.Member, error) {
	if _, err := h.clubs.Get(ctx, q.ClubID); err != nil {
		return nil, err
	}

	members, err := h.members.GetActiveByClubID(ctx, q.ClubID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.Member, 0, len(members))
	for _, member := range members {
		result = append(result, dto.NewMemberFromEntity(member))
	}
	return result, nil
}

type ExportMembers struct {
	ClubID string
}

type ExportMembersHandler struct {
	clubs   secondary.ClubRepository
	members secondary.MemberRepository
}

func NewExportMembersHandler(clubs secondary.ClubRepository, members secondary.MemberRepository) *ExportMembersHandler {
	return &ExportMembersHandler{
		clubs:   clubs,
		members: members,
	}
}

// Handle exports the active member roster as an xlsx workbook.
func (h *ExportMembersHandler) Handle(ctx context.Context, q ExportMembers) ([]byte, error) {
	club, err := h.clubs.Get(ctx, q.ClubID)
	if err != nil {
		return nil, err
	}
	members, err := h.members.GetActiveByClubID(ctx, q.ClubID)
	if err != nil {
		return nil, err
	}

	buf, err := export.MembersToXLSX(club.Name, members)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
