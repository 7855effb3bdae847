package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/entity"
)

type InvitationStorage struct {
	db *gorm.DB
}

func NewInvitationStorage(db *gorm.DB) *InvitationStorage {
	return &InvitationStorage{
		db: db,
	}
}

func (s *InvitationStorage) Create(ctx context.Context, invitation *entity.Invitation) (*entity.Invitation, error) {
	err := s.db.WithContext(ctx).Create(&invitation).Error
	return invitation, translateError(err, "invitation not found", "invitation token already exists")
}

func (s *InvitationStorage) GetByToken(ctx context.Context, token string) (*entity.Invitation, error) {
	var invitation entity.Invitation
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&invitation).Error
	if err != nil {
		return nil, translateError(err, "invitation not found", "")
	}
	return &invitation, nil
}

func (s *InvitationStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.Invitation, error) {
	var invitations []entity.Invitation
	err := s.db.WithContext(ctx).Where("club_id = ?", clubID).Order("created_at desc").Find(&invitations).Error
	return invitations, err
}

func (s *InvitationStorage) Update(ctx context.Context, invitation *entity.Invitation) (*entity.Invitation, error) {
	err := s.db.WithContext(ctx).Save(&invitation).Error
	return invitation, translateError(err, "invitation not found", "")
}

func (s *InvitationStorage) Delete(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Invitation{}).Error
	return translateError(err, "invitation not found", "")
}

// DeleteExpired removes unused invitations past their expiry and returns
// how many rows went away. Used invitations stay for history.
func (s *InvitationStorage) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("expires_at < ? AND used_at IS NULL", before).
		Delete(&entity.Invitation{})
	return result.RowsAffected, result.Error
}
