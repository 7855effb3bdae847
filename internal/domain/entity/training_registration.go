package entity

import (
	"time"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "PENDING"
	RegistrationConfirmed RegistrationStatus = "CONFIRMED"
	RegistrationCancelled RegistrationStatus = "CANCELLED"
	RegistrationWaitlist  RegistrationStatus = "WAITLIST"
)

// TrainingRegistration records one user's enrollment in one training.
// A user has at most one non-cancelled registration per training;
// cancellation is terminal.
type TrainingRegistration struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	TrainingID   string             `gorm:"not null;type:uuid;index:idx_registrations_training_user"`
	UserID       string             `gorm:"not null;index:idx_registrations_training_user"`
	Status       RegistrationStatus `gorm:"not null"`
	RegisteredAt time.Time          `gorm:"not null"`
	CancelledAt  *time.Time
}

// NewTrainingRegistration creates a registration with the status decided by
// the capacity check at registration time: CONFIRMED when a spot is free,
// WAITLIST otherwise.
func NewTrainingRegistration(id, trainingID, userID string, status RegistrationStatus) (*TrainingRegistration, error) {
	if trainingID == "" {
		return nil, errorz.Validation("registration training is required")
	}
	if userID == "" {
		return nil, errorz.Validation("registration user is required")
	}
	if status != RegistrationConfirmed && status != RegistrationWaitlist && status != RegistrationPending {
		return nil, errorz.Validation("invalid initial registration status: " + string(status))
	}
	return &TrainingRegistration{
		ID:           id,
		TrainingID:   trainingID,
		UserID:       userID,
		Status:       status,
		RegisteredAt: time.Now(),
	}, nil
}

// IsActive reports whether the registration still holds or awaits a spot.
func (r *TrainingRegistration) IsActive() bool {
	return r.Status != RegistrationCancelled
}

func (r *TrainingRegistration) CanBeCancelled() bool {
	return r.Status != RegistrationCancelled
}

func (r *TrainingRegistration) Confirm() error {
	if r.Status == RegistrationCancelled {
		return errorz.InvalidState("a cancelled registration cannot be confirmed")
	}
	r.Status = RegistrationConfirmed
	return nil
}

func (r *TrainingRegistration) MoveToWaitlist() error {
	if r.Status == RegistrationCancelled {
		return errorz.InvalidState("a cancelled registration cannot be waitlisted")
	}
	r.Status = RegistrationWaitlist
	return nil
}

// Cancel is terminal; there is no un-cancel.
func (r *TrainingRegistration) Cancel() error {
	if !r.CanBeCancelled() {
		return errorz.InvalidState("registration is already cancelled")
	}
	now := time.Now()
	r.Status = RegistrationCancelled
	r.CancelledAt = &now
	return nil
}
