package secondary

import (
	"context"

	"github.com/clubmate/backend/internal/domain/entity"
)

// MemberRepository defines the persistence operations for club members.
// Removal is a soft delete, so finders distinguish active records.
type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) (*entity.Member, error)
	Get(ctx context.Context, id string) (*entity.Member, error)
	GetActive(ctx context.Context, clubID, userID string) (*entity.Member, error)
	GetActiveByClubID(ctx context.Context, clubID string) ([]entity.Member, error)
	Update(ctx context.Context, member *entity.Member) (*entity.Member, error)
	CountActiveByClubID(ctx context.Context, clubID string) (int64, error)
}
