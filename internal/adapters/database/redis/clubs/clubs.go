package clubs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clubmate/backend/internal/domain/dto"
)

const cacheTTL = 5 * time.Minute

// Storage caches club read models. Cache misses and decode failures fall
// through to the database; writes invalidate.
type Storage struct {
	redis *redis.Client
}

func NewStorage(client *redis.Client) *Storage {
	return &Storage{
		redis: client,
	}
}

func (s *Storage) Get(ctx context.Context, clubID string) (*dto.Club, bool) {
	data, err := s.redis.Get(ctx, key(clubID)).Bytes()
	if err != nil {
		return nil, false
	}
	var club dto.Club
	if err = json.Unmarshal(data, &club); err != nil {
		return nil, false
	}
	return &club, true
}

func (s *Storage) Set(ctx context.Context, club dto.Club) {
	data, err := json.Marshal(club)
	if err != nil {
		return
	}
	s.redis.Set(ctx, key(club.ID), data, cacheTTL)
}

func (s *Storage) Invalidate(ctx context.Context, clubID string) {
	s.redis.Del(ctx, key(clubID))
}

func key(clubID string) string {
	return "club:" + clubID
}
