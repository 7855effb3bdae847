package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/entity"
)

type MemberStorage struct {
	db *gorm.DB
}

func NewMemberStorage(db *gorm.DB) *MemberStorage {
	return &MemberStorage{
		db: db,
	}
}

func (s *MemberStorage) Create(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Create(&member).Error
	return member, translateError(err, "member not found", "user is already a member of this club")
}

func (s *MemberStorage) Get(ctx context.Context, id string) (*entity.Member, error) {
	var member entity.Member
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, translateError(err, "member not found", "")
	}
	return &member, nil
}

func (s *MemberStorage) GetActive(ctx context.Context, clubID, userID string) (*entity.Member, error) {
	var member entity.Member
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND user_id = ? AND is_active", clubID, userID).
		First(&member).Error
	if err != nil {
		return nil, translateError(err, "member not found", "")
	}
	return &member, nil
}

func (s *MemberStorage) GetActiveByClubID(ctx context.Context, clubID string) ([]entity.Member, error) {
	var members []entity.Member
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND is_active", clubID).
		Order("joined_at").
		Find(&members).Error
	return members, err
}

func (s *MemberStorage) Update(ctx context.Context, member *entity.Member) (*entity.Member, error) {
	err := s.db.WithContext(ctx).Save(&member).Error
	return member, translateError(err, "member not found", "")
}

func (s *MemberStorage) CountActiveByClubID(ctx context.Context, clubID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Member{}).
		Where("club_id = ? AND is_active", clubID).
		Count(&count).Error
	return count, err
}
