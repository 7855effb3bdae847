package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/entity"
	"github.com/clubmate/backend/internal/ports/secondary"
)

// clubCache lets write handlers drop stale read models. A nil cache is a
// valid wiring for tests.
type clubCache interface {
	Invalidate(ctx context.Context, clubID string)
}

type CreateClub struct {
	Name    string
	OwnerID string
}

type CreateClubHandler struct {
	clubs   secondary.ClubRepository
	members secondary.MemberRepository
}

func NewCreateClubHandler(clubs secondary.ClubRepository, members secondary.MemberRepository) *CreateClubHandler {
	return &CreateClubHandler{
		clubs:   clubs,
		members: members,
	}
}

// Handle creates a club and its owner membership. The name uniqueness
// pre-check is backed by a unique index at the storage layer, which turns a
// lost race into a Conflict on insert.
func (h *CreateClubHandler) Handle(ctx context.Context, cmd CreateClub) (dto.Club, error) {
	names, err := h.clubs.GetNames(ctx)
	if err != nil {
		return dto.Club{}, err
	}
	if err = entity.ValidateNameUniqueness(cmd.Name, names); err != nil {
		return dto.Club{}, err
	}

	club, err := entity.NewClub(uuid.New().String(), cmd.Name, cmd.OwnerID)
	if err != nil {
		return dto.Club{}, err
	}
	club, err = h.clubs.Create(ctx, club)
	if err != nil {
		return dto.Club{}, err
	}

	owner, err := entity.NewMember(uuid.New().String(), cmd.OwnerID, club.ID, entity.RoleOwner, nil)
	if err != nil {
		return dto.Club{}, err
	}
	if _, err = h.members.Create(ctx, owner); err != nil {
		return dto.Club{}, err
	}

	return dto.NewClubFromEntity(*club), nil
}

type UpdateClub struct {
	ClubID      string
	Name        entity.Optional[string]
	Description entity.Optional[string]
	LogoURL     entity.Optional[string]
	Location    entity.Optional[string]
}

type UpdateClubHandler struct {
	clubs secondary.ClubRepository
	cache clubCache
}

func NewUpdateClubHandler(clubs secondary.ClubRepository, cache clubCache) *UpdateClubHandler {
	return &UpdateClubHandler{
		clubs: clubs,
		cache: cache,
	}
}

func (h *UpdateClubHandler) Handle(ctx context.Context, cmd UpdateClub) (dto.Club, error) {
	club, err := h.clubs.Get(ctx, cmd.ClubID)
	if err != nil {
		return dto.Club{}, err
	}

	if cmd.Name.Present && !cmd.Name.Null {
		names, errNames := h.clubs.GetNames(ctx)
		if errNames != nil {
			return dto.Club{}, errNames
		}
		others := names[:0:0]
		for _, name := range names {
			if name != club.Name {
				others = append(others, name)
			}
		}
		if err = entity.ValidateNameUniqueness(cmd.Name.Value, others); err != nil {
			return dto.Club{}, err
		}
	}

	err = club.Update(entity.ClubUpdate{
		Name:        cmd.Name,
		Description: cmd.Description,
		LogoURL:     cmd.LogoURL,
		Location:    cmd.Location,
	})
	if err != nil {
		return dto.Club{}, err
	}

	club, err = h.clubs.Update(ctx, club)
	if err != nil {
		return dto.Club{}, err
	}
	if h.cache != nil {
		h.cache.Invalidate(ctx, club.ID)
	}

	return dto.NewClubFromEntity(*club), nil
}

type DeleteClub struct {
	ClubID string
}

type DeleteClubHandler struct {
	clubs secondary.ClubRepository
	cache clubCache
}

func NewDeleteClubHandler(clubs secondary.ClubRepository, cache clubCache) *DeleteClubHandler {
	return &DeleteClubHandler{
		clubs: clubs,
		cache: cache,
	}
}

func (h *DeleteClubHandler) Handle(ctx context.Context, cmd DeleteClub) (struct{}, error) {
	if _, err := h.clubs.Get(ctx, cmd.ClubID); err != nil {
		return struct{}{}, err
	}
	if err := h.clubs.Delete(ctx, cmd.ClubID); err != nil {
		return struct{}{}, err
	}
	if h.cache != nil {
		h.cache.Invalidate(ctx, cmd.ClubID)
	}
	return struct{}{}, nil
}
