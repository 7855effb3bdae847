package validator

import "unicode/utf8"

const (
	MinTrainingDuration = 30
	MaxTrainingDuration = 300
)

func TrainingTitle(title string) bool {
	return utf8.RuneCountInString(title) >= 3 && utf8.RuneCountInString(title) <= 100
}

func TrainingDescription(description string) bool {
	return utf8.RuneCountInString(description) <= 400
}

// TrainingDuration validates the duration of a training in minutes.
func TrainingDuration(minutes int) bool {
	return minutes >= MinTrainingDuration && minutes <= MaxTrainingDuration
}

func TrainingLocation(location string) bool {
	return utf8.RuneCountInString(location) <= 150
}

// MaxParticipants validates a participant cap. A nil cap means unbounded.
func MaxParticipants(cap *int) bool {
	return cap == nil || *cap >= 1
}
