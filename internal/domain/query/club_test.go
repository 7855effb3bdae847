package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/entity"
)

type fakeClubRepo struct {
	clubs map[string]entity.Club
	gets  int
}

func newFakeClubRepo(clubs ...entity.Club) *fakeClubRepo {
	repo := &fakeClubRepo{clubs: make(map[string]entity.Club)}
	for _, club := range clubs {
		repo.clubs[club.ID] = club
	}
	return repo
}

func (r *fakeClubRepo) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	r.clubs[club.ID] = *club
	stored := r.clubs[club.ID]
	return &stored, nil
}

func (r *fakeClubRepo) Get(_ context.Context, id string) (*entity.Club, error) {
	r.gets++
	club, ok := r.clubs[id]
	if !ok {
		return nil, errorz.NotFound("club not found")
	}
	return &club, nil
}

func (r *fakeClubRepo) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	r.clubs[club.ID] = *club
	stored := r.clubs[club.ID]
	return &stored, nil
}

func (r *fakeClubRepo) Delete(_ context.Context, id string) error {
	delete(r.clubs, id)
	return nil
}

func (r *fakeClubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.clubs)), nil
}

func (r *fakeClubRepo) GetNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(r.clubs))
	for _, club := range r.clubs {
		names = append(names, club.Name)
	}
	return names, nil
}

func (r *fakeClubRepo) GetWithPagination(_ context.Context, offset, limit int, _ string) ([]entity.Club, error) {
	all := make([]entity.Club, 0, len(r.clubs))
	for _, club := range r.clubs {
		all = append(all, club)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type memoryClubCache struct {
	entries map[string]dto.Club
}

func newMemoryClubCache() *memoryClubCache {
	return &memoryClubCache{entries: make(map[string]dto.Club)}
}

func (c *memoryClubCache) Get(_ context.Context, clubID string) (*dto.Club, bool) {
	club, ok := c.entries[clubID]
	if !ok {
		return nil, false
	}
	return &club, true
}

func (c *memoryClubCache) Set(_ context.Context, club dto.Club) {
	c.entries[club.ID] = club
}

func TestGetClub_CacheReadThrough(t *testing.T) {
	repo := newFakeClubRepo(entity.Club{ID: "club-1", Name: "Riverside FC", OwnerID: "owner-1"})
	cache := newMemoryClubCache()
	handler := NewGetClubHandler(repo, cache)

	first, err := handler.Handle(context.Background(), GetClub{ClubID: "club-1"})
	require.NoError(t, err)
	assert.Equal(t, "Riverside FC", first.Name)
	assert.Equal(t, 1, repo.gets)

	// The second read is served from the cache.
	second, err := handler.Handle(context.Background(), GetClub{ClubID: "club-1"})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.gets)
}

func TestGetClub_NilCache(t *testing.T) {
	repo := newFakeClubRepo(entity.Club{ID: "club-1", Name: "Riverside FC", OwnerID: "owner-1"})
	handler := NewGetClubHandler(repo, nil)

	_, err := handler.Handle(context.Background(), GetClub{ClubID: "club-1"})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), GetClub{ClubID: "missing"})
	assert.True(t, errorz.IsNotFound(err))
}

func TestListClubs_Defaults(t *testing.T) {
	repo := newFakeClubRepo(
		entity.Club{ID: "club-1", Name: "Riverside FC", OwnerID: "owner-1"},
		entity.Club{ID: "club-2", Name: "Northside United", OwnerID: "owner-2"},
	)
	handler := NewListClubsHandler(repo)

	list, err := handler.Handle(context.Background(), ListClubs{})
	require.NoError(t, err)
	assert.Len(t, list.Clubs, 2)
	assert.Equal(t, int64(2), list.Total)
}

func TestListPlans(t *testing.T) {
	handler := NewListPlansHandler()

	plans, err := handler.Handle(context.Background(), ListPlans{})
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, string(entity.PlanBeta), plans[0].ID)
	assert.Zero(t, plans[0].Price)
	assert.Equal(t, string(entity.PlanStarter), plans[1].ID)
	assert.Equal(t, string(entity.PlanPro), plans[2].ID)
	assert.Nil(t, plans[2].MaxTeams)
}
