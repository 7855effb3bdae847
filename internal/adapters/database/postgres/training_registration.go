package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/clubmate/backend/internal/domain/entity"
)

type TrainingRegistrationStorage struct {
	db *gorm.DB
}

func NewTrainingRegistrationStorage(db *gorm.DB) *TrainingRegistrationStorage {
	return &TrainingRegistrationStorage{
		db: db,
	}
}

// Create relies on the partial unique index over (training_id, user_id)
// for non-cancelled rows: a duplicate active registration surfaces as a
// Conflict instead of a second row.
func (s *TrainingRegistrationStorage) Create(ctx context.Context, registration *entity.TrainingRegistration) (*entity.TrainingRegistration, error) {
	err := s.db.WithContext(ctx).Create(&registration).Error
	return registration, translateError(err, "registration not found", "user is already registered for this training")
}

func (s *TrainingRegistrationStorage) GetActive(ctx context.Context, trainingID, userID string) (*entity.TrainingRegistration, error) {
	var registration entity.TrainingRegistration
	err := s.db.WithContext(ctx).
		Where("training_id = ? AND user_id = ? AND status <> ?", trainingID, userID, entity.RegistrationCancelled).
		First(&registration).Error
	if err != nil {
		return nil, translateError(err, "registration not found", "")
	}
	return &registration, nil
}

func (s *TrainingRegistrationStorage) GetByTrainingID(ctx context.Context, trainingID string) ([]entity.TrainingRegistration, error) {
	var registrations []entity.TrainingRegistration
	err := s.db.WithContext(ctx).
		Where("training_id = ?", trainingID).
		Order("registered_at").
		Find(&registrations).Error
	return registrations, err
}

func (s *TrainingRegistrationStorage) Update(ctx context.Context, registration *entity.TrainingRegistration) (*entity.TrainingRegistration, error) {
	err := s.db.WithContext(ctx).Save(&registration).Error
	return registration, translateError(err, "registration not found", "")
}

func (s *TrainingRegistrationStorage) CountActiveByTrainingID(ctx context.Context, trainingID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&entity.TrainingRegistration{}).
		Where("training_id = ? AND status <> ?", trainingID, entity.RegistrationCancelled).
		Count(&count).Error
	return count, err
}
