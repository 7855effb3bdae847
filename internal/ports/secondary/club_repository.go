package secondary

import (
	"context"

	"github.com/clubmate/backend/internal/domain/entity"
)

// ClubRepository defines the persistence operations the domain needs for clubs.
type ClubRepository interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	Update(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	GetNames(ctx context.Context) ([]string, error)
	GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error)
}
