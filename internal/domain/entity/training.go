package entity

import (
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/clubmate/backend/internal/domain/common/errorz"
	"github.com/clubmate/backend/internal/domain/utils/validator"
)

type TrainingStatus string

const (
	TrainingScheduled  TrainingStatus = "SCHEDULED"
	TrainingInProgress TrainingStatus = "IN_PROGRESS"
	TrainingCompleted  TrainingStatus = "COMPLETED"
	TrainingCancelled  TrainingStatus = "CANCELLED"
)

// Training is a capacity-limited session of a club. A nil MaxParticipants
// means unbounded capacity. An empty AllowedRoles list admits every role.
type Training struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ClubID          string `gorm:"not null;type:uuid;index"`
	Title           string `gorm:"not null"`
	Description     string
	ScheduledAt     time.Time `gorm:"not null"`
	DurationMinutes int       `gorm:"not null"`
	Location        string
	MaxParticipants *int
	Status          TrainingStatus `gorm:"not null"`
	AllowedRoles    pq.StringArray `gorm:"type:text[]"`
	CreatedBy       string
}

// TrainingUpdate carries a partial details update; absent fields keep the
// current value.
type TrainingUpdate struct {
	Title           Optional[string]
	Description     Optional[string]
	DurationMinutes Optional[int]
	Location        Optional[string]
	MaxParticipants Optional[*int]
}

func NewTraining(id, clubID, title, description string, scheduledAt time.Time, durationMinutes int, location string, maxParticipants *int, createdBy string) (*Training, error) {
	title = strings.TrimSpace(title)
	if clubID == "" {
		return nil, errorz.Validation("training club is required")
	}
	if !validator.TrainingTitle(title) {
		return nil, errorz.Validation("training title must be at least 3 characters")
	}
	if !validator.TrainingDescription(description) {
		return nil, errorz.Validation("training description is too long")
	}
	if !validator.TrainingDuration(durationMinutes) {
		return nil, errorz.Validation("training duration must be between 30 and 300 minutes")
	}
	if !validator.TrainingLocation(location) {
		return nil, errorz.Validation("training location is too long")
	}
	if !validator.MaxParticipants(maxParticipants) {
		return nil, errorz.Validation("training participant limit must be at least 1")
	}
	if !scheduledAt.After(time.Now()) {
		return nil, errorz.Validation("training must be scheduled in the future")
	}

	return &Training{
		ID:              id,
		ClubID:          clubID,
		Title:           title,
		Description:     description,
		ScheduledAt:     scheduledAt,
		DurationMinutes: durationMinutes,
		Location:        location,
		MaxParticipants: maxParticipants,
		Status:          TrainingScheduled,
		CreatedBy:       createdBy,
	}, nil
}

// Start moves a scheduled training into progress once its start time has
// arrived.
func (t *Training) Start() error {
	if t.Status != TrainingScheduled {
		return errorz.InvalidState("only a scheduled training can be started")
	}
	if t.ScheduledAt.After(time.Now()) {
		return errorz.InvalidState("training cannot be started before its scheduled time")
	}
	t.Status = TrainingInProgress
	return nil
}

func (t *Training) Complete() error {
	if t.Status != TrainingInProgress {
		return errorz.InvalidState("only a training in progress can be completed")
	}
	t.Status = TrainingCompleted
	return nil
}

// Cancel is allowed from SCHEDULED or IN_PROGRESS, never after completion.
func (t *Training) Cancel() error {
	switch t.Status {
	case TrainingCompleted:
		return errorz.InvalidState("a completed training cannot be cancelled")
	case TrainingCancelled:
		return errorz.InvalidState("training is already cancelled")
	}
	t.Status = TrainingCancelled
	return nil
}

func (t *Training) Reschedule(newDate time.Time) error {
	if t.Status != TrainingScheduled && t.Status != TrainingInProgress {
		return errorz.InvalidState("training can no longer be rescheduled")
	}
	if !newDate.After(time.Now()) {
		return errorz.Validation("training must be rescheduled to a future date")
	}
	t.ScheduledAt = newDate
	if t.Status == TrainingInProgress {
		t.Status = TrainingScheduled
	}
	return nil
}

// UpdateDetails applies a partial update, re-validating each provided field
// against the construction invariants. Terminal trainings are immutable.
func (t *Training) UpdateDetails(update TrainingUpdate) error {
	if t.Status == TrainingCompleted || t.Status == TrainingCancelled {
		return errorz.InvalidState("a completed or cancelled training cannot be updated")
	}
	if update.Title.Present {
		title := strings.TrimSpace(update.Title.Value)
		if update.Title.Null || !validator.TrainingTitle(title) {
			return errorz.Validation("training title must be at least 3 characters")
		}
		t.Title = title
	}
	if update.Description.Present {
		if !update.Description.Null && !validator.TrainingDescription(update.Description.Value) {
			return errorz.Validation("training description is too long")
		}
		if update.Description.Null {
			t.Description = ""
		} else {
			t.Description = update.Description.Value
		}
	}
	if update.DurationMinutes.Present {
		if update.DurationMinutes.Null || !validator.TrainingDuration(update.DurationMinutes.Value) {
			return errorz.Validation("training duration must be between 30 and 300 minutes")
		}
		t.DurationMinutes = update.DurationMinutes.Value
	}
	if update.Location.Present {
		if !update.Location.Null && !validator.TrainingLocation(update.Location.Value) {
			return errorz.Validation("training location is too long")
		}
		if update.Location.Null {
			t.Location = ""
		} else {
			t.Location = update.Location.Value
		}
	}
	if update.MaxParticipants.Present {
		if update.MaxParticipants.Null {
			t.MaxParticipants = nil
		} else {
			if !validator.MaxParticipants(update.MaxParticipants.Value) {
				return errorz.Validation("training participant limit must be at least 1")
			}
			t.MaxParticipants = update.MaxParticipants.Value
		}
	}
	return nil
}

// CanAcceptRegistrations reports whether new registrations may be taken:
// the training must still be scheduled and lie in the future.
func (t *Training) CanAcceptRegistrations() bool {
	return t.Status == TrainingScheduled && t.ScheduledAt.After(time.Now())
}

// HasAvailableSpots reports whether one more registrant fits given the
// current count of active registrations.
func (t *Training) HasAvailableSpots(currentCount int) bool {
	if t.MaxParticipants == nil {
		return true
	}
	return currentCount < *t.MaxParticipants
}

// AllowsRole reports whether a member role may register. An empty list
// admits everyone.
func (t *Training) AllowsRole(role MemberRole) bool {
	if len(t.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range t.AllowedRoles {
		if MemberRole(allowed) == role {
			return true
		}
	}
	return false
}

func (t *Training) EndTime() time.Time {
	return t.ScheduledAt.Add(time.Duration(t.DurationMinutes) * time.Minute)
}
