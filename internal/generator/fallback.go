// Deterministic fallback text, used when remote generation is unavailable or
// fails. These functions never fail and never return an empty string: any
// internal parse problem degrades to a documented literal instead.
package generator

import (
	"fmt"

	"github.com/CIhekweazu03/DescriptionGenerator/internal/event"
)

// FallbackDescription renders the fixed three-line description template.
func FallbackDescription(ev event.Event) string {
	name := ev.EventName
	if name == "" {
		name = "Our upcoming event"
	}
	timeInfo := FormatSpan(ev.StartDate, ev.EndDate, ev.StartTime, ev.EndTime)
	return fmt.Sprintf(fallbackDescriptionTemplate, name, ev.EventType, ev.Location(), timeInfo)
}

// FallbackExpectations renders the fixed volunteer expectations markdown.
// The arrival time is 45 minutes before the event start (09:00 assumed when
// the start time is missing); an unparseable start time degrades to the
// literal "45 minutes before the event start time".
func FallbackExpectations(ev event.Event) string {
	name := ev.EventName
	if name == "" {
		name = "the event"
	}
	return fmt.Sprintf(fallbackExpectationsTemplate, name, arrivalClock(ev.StartTime))
}

const fallbackDescriptionTemplate = `Join us for %s, a %s event.

This event will take place at %s on %s.

We look forward to seeing you there!`

const fallbackExpectationsTemplate = `# Volunteer Expectations for %s

Thank you for volunteering your time to support this event. Your help is what makes it possible.

## Arrival and Check-in
* Please arrive by %s for check-in and briefing
* Check in at the main entrance/registration desk

## Items to Bring
* Water bottle
* Name badge (if provided in advance)

## Responsibilities
* Greet and direct participants
* Assist with setup and breakdown
* Support presenters and participants as needed

## Schedule
* Volunteers should plan to stay until the conclusion of the event
* Breaks will be coordinated by the volunteer coordinator

## Contact
* For questions, please contact the volunteer coordinator`
