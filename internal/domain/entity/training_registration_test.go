package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubmate/backend/internal/domain/common/errorz"
)

func TestNewTrainingRegistration(t *testing.T) {
	registration, err := NewTrainingRegistration("reg-1", "tr-1", "user-1", RegistrationConfirmed)
	require.NoError(t, err)
	assert.True(t, registration.IsActive())

	_, err = NewTrainingRegistration("reg-1", "tr-1", "user-1", RegistrationCancelled)
	assert.True(t, errorz.IsValidation(err))
}

func TestTrainingRegistration_CancelIsTerminal(t *testing.T) {
	registration, err := NewTrainingRegistration("reg-1", "tr-1", "user-1", RegistrationWaitlist)
	require.NoError(t, err)

	require.NoError(t, registration.Cancel())
	assert.Equal(t, RegistrationCancelled, registration.Status)
	assert.NotNil(t, registration.CancelledAt)
	assert.False(t, registration.IsActive())

	assert.True(t, errorz.IsInvalidState(registration.Cancel()))
	assert.True(t, errorz.IsInvalidState(registration.Confirm()))
	assert.True(t, errorz.IsInvalidState(registration.MoveToWaitlist()))
}
