package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

func scheduledTraining(t *testing.T) *Training {
	t.Helper()
	training, err := NewTraining("tr-1", "club-1", "Sprint drills", "", time.Now().Add(time.Hour), 60, "Main hall", nil, "coach-1")
	require.NoError(t, err)
	return training
}

func TestNewTraining_Validation(t *testing.T) {
	future := time.Now().Add(time.Hour)

	_, err := NewTraining("tr-1", "club-1", "ab", "", future, 60, "", nil, "coach-1")
	assert.True(t, errorz.IsValidation(err))

	_, err = NewTraining("tr-1", "club-1", "Sprint drills", "", future, 20, "", nil, "coach-1")
	assert.True(t, errorz.IsValidation(err))

	_, err = NewTraining("tr-1", "club-1", "Sprint drills", "", future, 301, "", nil, "coach-1")
	assert.True(t, errorz.IsValidation(err))

	zero := 0
	_, err = NewTraining("tr-1", "club-1", "Sprint drills", "", future, 60, "", &zero, "coach-1")
	assert.True(t, errorz.IsValidation(err))

	_, err = NewTraining("tr-1", "club-1", "Sprint drills", "", time.Now().Add(-time.Minute), 60, "", nil, "coach-1")
	assert.True(t, errorz.IsValidation(err))
}

func TestTraining_StartBeforeScheduledTime(t *testing.T) {
	training := scheduledTraining(t)

	err := training.Start()
	require.True(t, errorz.IsInvalidState(err))
	assert.Equal(t, TrainingScheduled, training.Status)
}

func TestTraining_Lifecycle(t *testing.T) {
	training := scheduledTraining(t)
	training.ScheduledAt = time.Now().Add(-time.Minute)

	require.NoError(t, training.Start())
	assert.Equal(t, TrainingInProgress, training.Status)

	require.NoError(t, training.Complete())
	assert.Equal(t, TrainingCompleted, training.Status)

	assert.True(t, errorz.IsInvalidState(training.Start()))
	assert.True(t, errorz.IsInvalidState(training.Complete()))
	assert.True(t, errorz.IsInvalidState(training.Cancel()))
}

func TestTraining_CancelFromScheduled(t *testing.T) {
	training := scheduledTraining(t)

	require.NoError(t, training.Cancel())
	assert.Equal(t, TrainingCancelled, training.Status)
	assert.True(t, errorz.IsInvalidState(training.Cancel()))
}

func TestTraining_RescheduleInProgress_BackToScheduled(t *testing.T) {
	training := scheduledTraining(t)
	training.ScheduledAt = time.Now().Add(-time.Minute)
	require.NoError(t, training.Start())

	newDate := time.Now().Add(48 * time.Hour)
	require.NoError(t, training.Reschedule(newDate))
	assert.Equal(t, TrainingScheduled, training.Status)
	assert.Equal(t, newDate, training.ScheduledAt)
}

func TestTraining_ReschedulePast(t *testing.T) {
	training := scheduledTraining(t)
	assert.True(t, errorz.IsValidation(training.Reschedule(time.Now().Add(-time.Hour))))
}

func TestTraining_UpdateDetails_Partial(t *testing.T) {
	limit := 10
	training := scheduledTraining(t)
	training.Description = "bring cones"
	training.MaxParticipants = &limit

	err := training.UpdateDetails(TrainingUpdate{
		Title:           Set("Endurance run"),
		Description:     Clear[string](),
		MaxParticipants: Clear[*int](),
	})
	require.NoError(t, err)

	assert.Equal(t, "Endurance run", training.Title)
	assert.Empty(t, training.Description)
	assert.Nil(t, training.MaxParticipants)
	assert.Equal(t, 60, training.DurationMinutes)
	assert.Equal(t, "Main hall", training.Location)
}

func TestTraining_UpdateDetails_TitleNotClearable(t *testing.T) {
	training := scheduledTraining(t)
	assert.True(t, errorz.IsValidation(training.UpdateDetails(TrainingUpdate{Title: Clear[string]()})))
}

func TestTraining_UpdateDetails_TerminalImmutable(t *testing.T) {
	training := scheduledTraining(t)
	require.NoError(t, training.Cancel())

	err := training.UpdateDetails(TrainingUpdate{Title: Set("New title")})
	assert.True(t, errorz.IsInvalidState(err))
}

func TestTraining_CanAcceptRegistrations(t *testing.T) {
	training := scheduledTraining(t)
	assert.True(t, training.CanAcceptRegistrations())

	training.ScheduledAt = time.Now().Add(-time.Minute)
	assert.False(t, training.CanAcceptRegistrations())

	training = scheduledTraining(t)
	require.NoError(t, training.Cancel())
	assert.False(t, training.CanAcceptRegistrations())
}

func TestTraining_HasAvailableSpots(t *testing.T) {
	training := scheduledTraining(t)
	assert.True(t, training.HasAvailableSpots(1000))

	limit := 2
	training.MaxParticipants = &limit
	assert.True(t, training.HasAvailableSpots(1))
	assert.False(t, training.HasAvailableSpots(2))
}

func TestTraining_AllowsRole(t *testing.T) {
	training := scheduledTraining(t)
	assert.True(t, training.AllowsRole(RolePlayer))

	training.AllowedRoles = []string{string(RolePlayer)}
	assert.True(t, training.AllowsRole(RolePlayer))
	assert.False(t, training.AllowsRole(RoleCoach))
}

func TestTraining_EndTime(t *testing.T) {
	training := scheduledTraining(t)
	assert.Equal(t, training.ScheduledAt.Add(time.Hour), training.EndTime())
}
