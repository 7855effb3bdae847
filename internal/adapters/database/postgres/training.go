package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/entity"
)

type TrainingStorage struct {
	db *gorm.DB
}

func NewTrainingStorage(db *gorm.DB) *TrainingStorage {
	return &TrainingStorage{
		db: db,
	}
}

func (s *TrainingStorage) Create(ctx context.Context, training *entity.Training) (*entity.Training, error) {
	err := s.db.WithContext(ctx).Create(&training).Error
	return training, translateError(err, "training not found", "")
}

func (s *TrainingStorage) Get(ctx context.Context, id string) (*entity.Training, error) {
	var training entity.Training
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&training).Error
	if err != nil {
		return nil, translateError(err, "training not found", "")
	}
	return &training, nil
}

func (s *TrainingStorage) Update(ctx context.Context, training *entity.Training) (*entity.Training, error) {
	err := s.db.WithContext(ctx).Save(&training).Error
	return training, translateError(err, "training not found", "")
}

func (s *TrainingStorage) GetByClubID(ctx context.Context, clubID string) ([]entity.Training, error) {
	var trainings []entity.Training
	err := s.db.WithContext(ctx).
		Where("club_id = ?", clubID).
		Order("scheduled_at").
		Find(&trainings).Error
	return trainings, err
}

func (s *TrainingStorage) GetScheduledByClubID(ctx context.Context, clubID string, from time.Time) ([]entity.Training, error) {
	var trainings []entity.Training
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND status = ? AND scheduled_at > ?", clubID, entity.TrainingScheduled, from).
		Order("scheduled_at").
		Find(&trainings).Error
	return trainings, err
}
