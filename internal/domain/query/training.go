package query

import (
	"context"
	"time"

	"github.com/clubmate/backend/internal/domain/dto"
	"github.com/clubmate/backend/internal/domain/utils/calendar"
	"github.com/clubmate/backend/internal/ports/secondary"
)

type GetTraining struct {
	TrainingID string
}

type GetTrainingHandler struct {
	trainings     secondary.TrainingRepository
	registrations secondary.TrainingRegistrationRepository
}

func NewGetTrainingHandler(trainings secondary.TrainingRepository, registrations secondary.TrainingRegistrationRepository) *GetTrainingHandler {
	return &GetTrainingHandler{
		trainings:     trainings,
		registrations: registrations,
	}
}

// TrainingDetails is the training read model enriched with the current
// active registration count.
type TrainingDetails struct {
	dto.Training
	ActiveRegistrations int64 `json:"activeRegistrations"`
}

func (h *GetTrainingHandler) Handle(ctx context.Context, q GetTraining) (TrainingDetails, error) {
	training, err := h.trainings.Get(ctx, q.TrainingID)
	if err != nil {
		return TrainingDetails{}, err
	}
	count, err := h.registrations.CountActiveByTrainingID(ctx, q.TrainingID)
	if err != nil {
		return TrainingDetails{}, err
	}
	return TrainingDetails{
		Training:            dto.NewTrainingFromEntity(*training),
		ActiveRegistrations: count,
	}, nil
}

type ListTrainings struct {
	ClubID string
}

type ListTrainingsHandler struct {
	trainings secondary.TrainingRepository
}

func NewListTrainingsHandler(trainings secondary.TrainingRepository) *ListTrainingsHandler {
	return &ListTrainingsHandler{trainings: trainings}
}

func (h *ListTrainingsHandler) Handle(ctx context.Context, q ListTrainings) ([]dto.Training, error) {
	trainings, err := h.trainings.GetByClubID(ctx, q.ClubID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.Training, 0, len(trainings))
	for _, training := range trainings {
		result = append(result, dto.NewTrainingFromEntity(training))
	}
	return result, nil
}

type TrainingCalendar struct {
	ClubID string
}

type TrainingCalendarHandler struct {
	trainings secondary.TrainingRepository
}

func NewTrainingCalendarHandler(trainings secondary.TrainingRepository) *TrainingCalendarHandler {
	return &TrainingCalendarHandler{trainings: trainings}
}

// Handle exports the club's upcoming scheduled trainings as an iCalendar
// document.
func (h *TrainingCalendarHandler) Handle(ctx context.Context, q TrainingCalendar) ([]byte, error) {
	trainings, err := h.trainings.GetScheduledByClubID(ctx, q.ClubID, time.Now())
	if err != nil {
		return nil, err
	}

	items := make([]dto.Training, 0, len(trainings))
	for _, training := range trainings {
		items = append(items, dto.NewTrainingFromEntity(training))
	}
	return calendar.ExportTrainingsToICS(items)
}
