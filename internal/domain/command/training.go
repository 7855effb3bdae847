package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/entity"
	"github.com/clubmate/backend/internal/ports/secondary"
)

type CreateTraining struct {
	ClubID          string
	Title           string
	Description     string
	ScheduledAt     time.Time
	DurationMinutes int
	Location        string
	MaxParticipants *int
	AllowedRoles    []string
	CreatedBy       string
}

type CreateTrainingHandler struct {
	clubs     secondary.ClubRepository
	trainings secondary.TrainingRepository
}

func NewCreateTrainingHandler(clubs secondary.ClubRepository, trainings secondary.TrainingRepository) *CreateTrainingHandler {
	return &CreateTrainingHandler{
		clubs:     clubs,
		trainings: trainings,
	}
}

func (h *CreateTrainingHandler) Handle(ctx context.Context, cmd CreateTraining) (dto.Training, error) {
	if _, err := h.clubs.Get(ctx, cmd.ClubID); err != nil {
		return dto.Training{}, err
	}
	for _, role := range cmd.AllowedRoles {
		if !entity.MemberRole(role).Valid() {
			return dto.Training{}, errorz.Validation("unknown member role: " + role)
		}
	}

	training, err := entity.NewTraining(
		uuid.New().String(),
		cmd.ClubID,
		cmd.Title,
		cmd.Description,
		cmd.ScheduledAt,
		cmd.DurationMinutes,
		cmd.Location,
		cmd.MaxParticipants,
		cmd.CreatedBy,
	)
	if err != nil {
		return dto.Training{}, err
	}
	training.AllowedRoles = pq.StringArray(cmd.AllowedRoles)

	training, err = h.trainings.Create(ctx, training)
	if err != nil {
		return dto.Training{}, err
	}
	return dto.NewTrainingFromEntity(*training), nil
}

type StartTraining struct {
	TrainingID string
}

type CompleteTraining struct {
	TrainingID string
}

type CancelTraining struct {
	TrainingID string
}

type RescheduleTraining struct {
	TrainingID string
	NewDate    time.Time
}

type UpdateTrainingDetails struct {
	TrainingID      string
	Title           entity.Optional[string]
	Description     entity.Optional[string]
	DurationMinutes entity.Optional[int]
	Location        entity.Optional[string]
	MaxParticipants entity.Optional[*int]
}

// TrainingLifecycleHandler serves the status transitions of a training.
// Every operation loads the entity, runs the guarded transition and persists
// the result; the entity owns the guards.
type TrainingLifecycleHandler struct {
	trainings secondary.TrainingRepository
}

func NewTrainingLifecycleHandler(trainings secondary.TrainingRepository) *TrainingLifecycleHandler {
	return &TrainingLifecycleHandler{trainings: trainings}
}

func (h *TrainingLifecycleHandler) HandleStart(ctx context.Context, cmd StartTraining) (dto.Training, error) {
	return h.transition(ctx, cmd.TrainingID, (*entity.Training).Start)
}

func (h *TrainingLifecycleHandler) HandleComplete(ctx context.Context, cmd CompleteTraining) (dto.Training, error) {
	return h.transition(ctx, cmd.TrainingID, (*entity.Training).Complete)
}

func (h *TrainingLifecycleHandler) HandleCancel(ctx context.Context, cmd CancelTraining) (dto.Training, error) {
	return h.transition(ctx, cmd.TrainingID, (*entity.Training).Cancel)
}

func (h *TrainingLifecycleHandler) HandleReschedule(ctx context.Context, cmd RescheduleTraining) (dto.Training, error) {
	return h.transition(ctx, cmd.TrainingID, func(t *entity.Training) error {
		return t.Reschedule(cmd.NewDate)
	})
}

func (h *TrainingLifecycleHandler) HandleUpdateDetails(ctx context.Context, cmd UpdateTrainingDetails) (dto.Training, error) {
	return h.transition(ctx, cmd.TrainingID, func(t *entity.Training) error {
		return t.UpdateDetails(entity.TrainingUpdate{
			Title:           cmd.Title,
			Description:     cmd.Description,
			DurationMinutes: cmd.DurationMinutes,
			Location:        cmd.Location,
			MaxParticipants: cmd.MaxParticipants,
		})
	})
}

func (h *TrainingLifecycleHandler) transition(ctx context.Context, trainingID string, apply func(*entity.Training) error) (dto.Training, error) {
	training, err := h.trainings.Get(ctx, trainingID)
	if err != nil {
		return dto.Training{}, err
	}
	if err = apply(training); err != nil {
		return dto.Training{}, err
	}
	training, err = h.trainings.Update(ctx, training)
	if err != nil {
		return dto.Training{}, err
	}
	return dto.NewTrainingFromEntity(*training), nil
}
