package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/entity"
)

type ClubStorage struct {
	db *gorm.DB
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		db: db,
	}
}

func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Create(&club).Error
	return club, translateError(err, "club not found", "a club with this name already exists")
}

func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	var club entity.Club
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&club).Error
	if err != nil {
		return nil, translateError(err, "club not found", "")
	}
	return &club, nil
}

func (s *ClubStorage) Update(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	err := s.db.WithContext(ctx).Save(&club).Error
	return club, translateError(err, "club not found", "a club with this name already exists")
}

// Delete removes a club and everything that hangs off it.
func (s *ClubStorage) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", id).Delete(&entity.Invitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Member{}).Error; err != nil {
			return err
		}
		if err := tx.Where("training_id IN (?)",
			tx.Model(&entity.Training{}).Select("id").Where("club_id = ?", id),
		).Delete(&entity.TrainingRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&entity.Training{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Club{}).Error
	})
}

func (s *ClubStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.Club{}).Count(&count).Error
	return count, err
}

func (s *ClubStorage) GetNames(ctx context.Context) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).Model(&entity.Club{}).Pluck("name", &names).Error
	return names, err
}

func (s *ClubStorage) GetWithPagination(ctx context.Context, offset, limit int, order string) ([]entity.Club, error) {
	var clubs []entity.Club
	err := s.db.WithContext(ctx).Order(order).Offset(offset).Limit(limit).Find(&clubs).Error
	return clubs, err
}
