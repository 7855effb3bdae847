package calendar

import (
	"bytes"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/clubmate/backend/internal/domain/dto"
)

// ExportTrainingsToICS converts trainings into an iCalendar (.ics) document.
// Each training becomes an event with reminders one day and one hour before
// the start.
func ExportTrainingsToICS(trainings []dto.Training) ([]byte, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Clubmate//EN")
	cal.SetVersion("2.0")
	cal.SetCalscale("GREGORIAN")

	now := time.Now()
	for _, training := range trainings {
		event := cal.AddEvent(fmt.Sprintf("%s@clubmate", training.ID))

		// DTSTAMP is required; mobile clients refuse events without it.
		event.SetDtStampTime(now)
		event.SetCreatedTime(now)
		event.SetModifiedAt(now)

		event.SetStartAt(training.ScheduledAt)
		event.SetEndAt(training.EndTime)

		event.SetSummary(training.Title)
		event.SetDescription(training.Description)
		event.SetLocation(training.Location)
		event.SetStatus(ics.ObjectStatusConfirmed)
		event.SetTimeTransparency(ics.TransparencyOpaque)
		event.SetClass(ics.ClassificationPublic)
		event.SetSequence(0)

		dayAlarm := event.AddAlarm()
		dayAlarm.SetAction(ics.ActionDisplay)
		dayAlarm.AddProperty("TRIGGER;VALUE=DURATION", "-P1D")
		dayAlarm.SetDescription(fmt.Sprintf("Reminder: %s (tomorrow)", training.Title))

		hourAlarm := event.AddAlarm()
		hourAlarm.SetAction(ics.ActionDisplay)
		hourAlarm.AddProperty("TRIGGER;VALUE=DURATION", "-PT1H")
		hourAlarm.SetDescription(fmt.Sprintf("Reminder: %s (in an hour)", training.Title))
	}

	var buf bytes.Buffer
	if err := cal.SerializeTo(&buf); err != nil {
		return nil, fmt.Errorf("error serializing calendar: %w", err)
	}
	return buf.Bytes(), nil
}
