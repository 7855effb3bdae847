package secondary

import (
	"context"
	"time"

	"github.com/clubmate/backend/internal/domain/entity"
)

// InvitationRepository defines the persistence operations for invitations.
// The token is the external lookup key. Single-use consumption relies on the
// storage enforcing a unique token constraint and updating atomically.
type InvitationRepository interface {
	Create(ctx context.Context, invitation *entity.Invitation) (*entity.Invitation, error)
	GetByToken(ctx context.Context, token string) (*entity.Invitation, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.Invitation, error)
	Update(ctx context.Context, invitation *entity.Invitation) (*entity.Invitation, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
