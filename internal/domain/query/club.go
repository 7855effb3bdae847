package query

import (
	"context"

	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/ports/secondary"
)

// clubCache is the read-model cache seam. A nil cache disables caching.
type clubCache interface {
	Get(ctx context.Context, clubID string) (*dto.Club, bool)
	Set(ctx context.Context, club dto.Club)
}

type GetClub struct {
	ClubID string
}

type GetClubHandler struct {
	clubs secondary.ClubRepository
	cache clubCache
}

func NewGetClubHandler(clubs secondary.ClubRepository, cache clubCache) *GetClubHandler {
	return &GetClubHandler{
		clubs: clubs,
		cache: cache,
	}
}

func (h *GetClubHandler) Handle(ctx context.Context, q GetClub) (dto.Club, error) {
	if h.cache != nil {
		if cached, ok := h.cache.Get(ctx, q.ClubID); ok {
			return *cached, nil
		}
	}

	club, err := h.clubs.Get(ctx, q.ClubID)
	if err != nil {
		return dto.Club{}, err
	}

	readModel := dto.NewClubFromEntity(*club)
	if h.cache != nil {
		h.cache.Set(ctx, readModel)
	}
	return readModel, nil
}

type ListClubs struct {
	Offset int
	Limit  int
	Order  string
}

type ListClubsHandler struct {
	clubs secondary.ClubRepository
}

func NewListClubsHandler(clubs secondary.ClubRepository) *ListClubsHandler {
	return &ListClubsHandler{clubs: clubs}
}

func (h *ListClubsHandler) Handle(ctx context.Context, q ListClubs) (dto.ClubList, error) {
	order := q.Order
	if order == "" {
		order = "created_at desc"
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	clubs, err := h.clubs.GetWithPagination(ctx, q.Offset, limit, order)
	if err != nil {
		return dto.ClubList{}, err
	}
	total, err := h.clubs.Count(ctx)
	if err != nil {
		return dto.ClubList{}, err
	}

	list := dto.ClubList{
		Clubs: make([]dto.Club, 0, len(clubs)),
		Total: total,
	}
	for _, club := range clubs {
		list.Clubs = append(list.Clubs, dto.NewClubFromEntity(club))
	}
	return list, nil
}
