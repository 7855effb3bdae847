package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/entity"
)

type SubscriptionStorage struct {
	db *gorm.DB
}

func NewSubscriptionStorage(db *gorm.DB) *SubscriptionStorage {
	return &SubscriptionStorage{
		db: db,
	}
}

func (s *SubscriptionStorage) Create(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	err := s.db.WithContext(ctx).Create(&subscription).Error
	return subscription, translateError(err, "subscription not found", "club already has a subscription")
}

func (s *SubscriptionStorage) Get(ctx context.Context, id string) (*entity.Subscription, error) {
	var subscription entity.Subscription
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&subscription).Error
	if err != nil {
		return nil, translateError(err, "subscription not found", "")
	}
	return &subscription, nil
}

// GetByClubID returns the club's current subscription: the most recently
// created row, since canceled rows are kept for history.
func (s *SubscriptionStorage) GetByClubID(ctx context.Context, clubID string) (*entity.Subscription, error) {
	var subscription entity.Subscription
	err := s.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("created_at desc").
		First(&subscription).Error
	if err != nil {
		return nil, translateError(err, "subscription not found", "")
	}
	return &subscription, nil
}

func (s *SubscriptionStorage) Update(ctx context.Context, subscription *entity.Subscription) (*entity.Subscription, error) {
	err := s.db.WithContext(ctx).Save(&subscription).Error
	return subscription, translateError(err, "subscription not found", "")
}
