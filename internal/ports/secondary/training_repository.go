package secondary

import (
	"context"
	"time"

	"github.com/clubmate/backend/internal/domain/entity"
)

// TrainingRepository defines the persistence operations for trainings.
type TrainingRepository interface {
	Create(ctx context.Context, training *entity.Training) (*entity.Training, error)
	Get(ctx context.Context, id string) (*entity.Training, error)
	Update(ctx context.Context, training *entity.Training) (*entity.Training, error)
	GetByClubID(ctx context.Context, clubID string) ([]entity.Training, error)
	GetScheduledByClubID(ctx context.Context, clubID string, from time.Time) ([]entity.Training, error)
}

// TrainingRegistrationRepository defines the persistence operations for
// training registrations. The capacity decision (count then insert) must run
// inside a conflict-detecting transaction at the storage layer.
type TrainingRegistrationRepository interface {
	Create(ctx context.Context, registration *entity.TrainingRegistration) (*entity.TrainingRegistration, error)
	GetActive(ctx context.Context, trainingID, userID string) (*entity.TrainingRegistration, error)
	GetByTrainingID(ctx context.Context, trainingID string) ([]entity.TrainingRegistration, error)
	Update(ctx context.Context, registration *entity.TrainingRegistration) (*entity.TrainingRegistration, error)
	CountActiveByTrainingID(ctx context.Context, trainingID string) (int64, error)
}
