package dto

import (
	"time"

	"github.com/clubmate/backend/internal/domain/entity"
)

type Training struct {
	ID              string    `json:"id"`
	ClubID          string    `json:"clubId"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Location        string    `json:"location,omitempty"`
	MaxParticipants *int      `json:"maxParticipants"`
	Status          string    `json:"status"`
}

func NewTrainingFromEntity(training entity.Training) Training {
	return Training{
		ID:              training.ID,
		ClubID:          training.ClubID,
		Title:           training.Title,
		Description:     training.Description,
		ScheduledAt:     training.ScheduledAt,
		EndTime:         training.EndTime(),
		DurationMinutes: training.DurationMinutes,
		Location:        training.Location,
		MaxParticipants: training.MaxParticipants,
		Status:          string(training.Status),
	}
}

type Registration struct {
	ID           string    `json:"id"`
	TrainingID   string    `json:"trainingId"`
	UserID       string    `json:"userId"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registeredAt"`
}

func NewRegistrationFromEntity(registration entity.TrainingRegistration) Registration {
	return Registration{
		ID:           registration.ID,
		TrainingID:   registration.TrainingID,
		UserID:       registration.UserID,
		Status:       string(registration.Status),
		RegisteredAt: registration.RegisteredAt,
	}
}
