package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/entity"
	"github.com/clubmate/backend/internal/ports/secondary"
)

type RegisterToTraining struct {
	TrainingID string
	UserID     string
}

type RegisterToTrainingHandler struct {
	trainings     secondary.TrainingRepository
	registrations secondary.TrainingRegistrationRepository
	members       secondary.MemberRepository
}

func NewRegisterToTrainingHandler(
	trainings secondary.TrainingRepository,
	registrations secondary.TrainingRegistrationRepository,
	members secondary.MemberRepository,
) *RegisterToTrainingHandler {
	return &RegisterToTrainingHandler{
		trainings:     trainings,
		registrations: registrations,
		members:       members,
	}
}

// Handle enrolls a user. The capacity decision is made exactly once, here:
// a free spot yields CONFIRMED, a full training yields WAITLIST. The count
// and insert must share a conflict-detecting transaction at the storage
// layer; a later cancellation never promotes anyone.
func (h *RegisterToTrainingHandler) Handle(ctx context.Context, cmd RegisterToTraining) (dto.Registration, error) {
	training, err := h.trainings.Get(ctx, cmd.TrainingID)
	if err != nil {
		return dto.Registration{}, err
	}
	if !training.CanAcceptRegistrations() {
		return dto.Registration{}, errorz.InvalidState("training is not accepting registrations")
	}

	if len(training.AllowedRoles) > 0 {
		member, errMember := h.members.GetActive(ctx, training.ClubID, cmd.UserID)
		if errMember != nil {
			if errorz.IsNotFound(errMember) {
				return dto.Registration{}, errorz.Validation("only club members can register for this training")
			}
			return dto.Registration{}, errMember
		}
		if !training.AllowsRole(member.Role) {
			return dto.Registration{}, errorz.Validation("this training is not open to your role")
		}
	}

	existing, err := h.registrations.GetActive(ctx, cmd.TrainingID, cmd.UserID)
	if err != nil && !errorz.IsNotFound(err) {
		return dto.Registration{}, err
	}
	if existing != nil {
		return dto.Registration{}, errorz.Conflict("user is already registered for this training")
	}

	activeCount, err := h.registrations.CountActiveByTrainingID(ctx, cmd.TrainingID)
	if err != nil {
		return dto.Registration{}, err
	}
	status := entity.RegistrationWaitlist
	if training.HasAvailableSpots(int(activeCount)) {
		status = entity.RegistrationConfirmed
	}

	registration, err := entity.NewTrainingRegistration(uuid.New().String(), cmd.TrainingID, cmd.UserID, status)
	if err != nil {
		return dto.Registration{}, err
	}
	registration, err = h.registrations.Create(ctx, registration)
	if err != nil {
		return dto.Registration{}, err
	}

	return dto.NewRegistrationFromEntity(*registration), nil
}

type CancelTrainingRegistration struct {
	TrainingID string
	UserID     string
}

type CancelTrainingRegistrationHandler struct {
	registrations secondary.TrainingRegistrationRepository
}

func NewCancelTrainingRegistrationHandler(registrations secondary.TrainingRegistrationRepository) *CancelTrainingRegistrationHandler {
	return &CancelTrainingRegistrationHandler{registrations: registrations}
}

func (h *CancelTrainingRegistrationHandler) Handle(ctx context.Context, cmd CancelTrainingRegistration) (dto.Registration, error) {
	registration, err := h.registrations.GetActive(ctx, cmd.TrainingID, cmd.UserID)
	if err != nil {
		return dto.Registration{}, err
	}
	if err = registration.Cancel(); err != nil {
		return dto.Registration{}, err
	}
	registration, err = h.registrations.Update(ctx, registration)
	if err != nil {
		return dto.Registration{}, err
	}
	return dto.NewRegistrationFromEntity(*registration), nil
}
