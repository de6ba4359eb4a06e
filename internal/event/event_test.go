package event

import "testing"

func TestLocation(t *testing.T) {
	e := Event{LocationName: "City Hall", City: "Springfield", State: "IL"}
	if got := e.Location(); got != "City Hall, Springfield, IL" {
		t.Fatalf("unexpected location: %q", got)
	}
}

func TestVenueSentence(t *testing.T) {
	e := Event{VenueType: "Indoors"}
	if got := e.VenueSentence(); got != "This event will be held indoors." {
		t.Fatalf("unexpected venue sentence: %q", got)
	}
	if got := (Event{}).VenueSentence(); got != "" {
		t.Fatalf("expected empty sentence for no venue type, got %q", got)
	}
}

func TestRecurringSentence(t *testing.T) {
	e := Event{
		IsRecurring:    "Yes",
		RecurringDates: []string{"2025-07-01", "2025-08-01"},
	}
	want := "This is a recurring event with additional dates: 2025-07-01, 2025-08-01."
	if got := e.RecurringSentence(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	// Not recurring, or recurring with no listed dates, renders nothing.
	if got := (Event{IsRecurring: "No", RecurringDates: []string{"2025-07-01"}}).RecurringSentence(); got != "" {
		t.Fatalf("expected empty sentence, got %q", got)
	}
	if got := (Event{IsRecurring: "Yes"}).RecurringSentence(); got != "" {
		t.Fatalf("expected empty sentence, got %q", got)
	}
}

func TestCategoryOrDefault(t *testing.T) {
	if got := (Event{}).CategoryOrDefault(); got != "Standard Event" {
		t.Fatalf("expected default category, got %q", got)
	}
	if got := (Event{EventCategory: "Community"}).CategoryOrDefault(); got != "Community" {
		t.Fatalf("expected explicit category, got %q", got)
	}
}

func TestMultiDay(t *testing.T) {
	if (Event{StartDate: "2025-06-15", EndDate: "2025-06-15"}).MultiDay() {
		t.Fatalf("same dates must not be multi-day")
	}
	if !(Event{StartDate: "2025-06-15", EndDate: "2025-06-16"}).MultiDay() {
		t.Fatalf("different dates must be multi-day")
	}
}
