// Package event defines the form data describing a single event instance.
package event

import (
	"fmt"
	"strings"
)

// Event holds the caller-supplied form fields for one event.
// Every field is optional; the zero value is an event with all fields empty.
// Dates are YYYY-MM-DD, times are 24-hour HH:MM.
type Event struct {
	EventName      string   `json:"event_name"`
	EventType      string   `json:"event_type"`
	EventCategory  string   `json:"event_category"`
	LocationName   string   `json:"location_name"`
	StreetAddress  string   `json:"street_address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	VenueType      string   `json:"venue_type"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	IsRecurring    string   `json:"is_recurring" binding:"omitempty,oneof=Yes No"`
	RecurringDates []string `json:"recurring_dates"`
}

// Location renders the composed location string used in prompts and fallbacks.
func (e Event) Location() string {
	return fmt.Sprintf("%s, %s, %s", e.LocationName, e.City, e.State)
}

// VenueSentence renders the indoor/outdoor sentence, or "" when no venue type is set.
func (e Event) VenueSentence() string {
	if e.VenueType == "" {
		return ""
	}
	return fmt.Sprintf("This event will be held %s.", strings.ToLower(e.VenueType))
}

// RecurringSentence renders the additional-dates sentence for recurring events.
// Returns "" unless is_recurring is "Yes" and at least one extra date is listed.
func (e Event) RecurringSentence() string {
	if e.IsRecurring != "Yes" || len(e.RecurringDates) == 0 {
		return ""
	}
	return fmt.Sprintf("This is a recurring event with additional dates: %s.", strings.Join(e.RecurringDates, ", "))
}

// CategoryOrDefault returns the event category, defaulting to "Standard Event".
func (e Event) CategoryOrDefault() string {
	if e.EventCategory == "" {
		return "Standard Event"
	}
	return e.EventCategory
}

// MultiDay reports whether the event spans more than one calendar date.
// This is a string comparison on the raw form values, matching how the
// span formatter decides between single-day and multi-day rendering.
func (e Event) MultiDay() bool {
	return e.StartDate != e.EndDate
}
