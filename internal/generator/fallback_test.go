package generator

import (
	"strings"
	"testing"

	"github.com/CIhekweazu03/DescriptionGenerator/internal/event"
)

func sampleEvent() event.Event {
	return event.Event{
		EventName:    "Spring Career Fair",
		EventType:    "Career Fair",
		LocationName: "Convention Center",
		City:         "Springfield",
		State:        "IL",
		StartDate:    "2025-06-15",
		EndDate:      "2025-06-15",
		StartTime:    "09:00",
		EndTime:      "17:00",
	}
}

func TestFallbackDescription(t *testing.T) {
	got := FallbackDescription(sampleEvent())

	for _, want := range []string{
		"Join us for Spring Career Fair, a Career Fair event.",
		"Convention Center, Springfield, IL",
		"Sunday, June 15, 2025, 9:00 AM to 5:00 PM",
		"We look forward to seeing you there!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("fallback description missing %q:\n%s", want, got)
		}
	}
}

func TestFallbackDescription_DefaultName(t *testing.T) {
	got := FallbackDescription(event.Event{})
	if !strings.Contains(got, "Join us for Our upcoming event") {
		t.Fatalf("expected default event name, got:\n%s", got)
	}
}

func TestFallbackExpectations_ArrivalTime(t *testing.T) {
	got := FallbackExpectations(sampleEvent())
	if !strings.Contains(got, "Please arrive by 8:15 AM") {
		t.Fatalf("expected arrival 45 minutes before 09:00, got:\n%s", got)
	}
	if !strings.Contains(got, "# Volunteer Expectations for Spring Career Fair") {
		t.Fatalf("expected titled document, got:\n%s", got)
	}
}

func TestFallbackExpectations_MissingStartDefaults(t *testing.T) {
	got := FallbackExpectations(event.Event{EventName: "X"})
	// Missing start time assumes a 09:00 start.
	if !strings.Contains(got, "Please arrive by 8:15 AM") {
		t.Fatalf("expected default 09:00 reference, got:\n%s", got)
	}
}

func TestFallbackExpectations_MalformedStartDegrades(t *testing.T) {
	ev := event.Event{EventName: "X", StartTime: "early"}
	got := FallbackExpectations(ev)
	if !strings.Contains(got, "45 minutes before the event start time") {
		t.Fatalf("expected degraded arrival phrase, got:\n%s", got)
	}
}

func TestFallbackExpectations_Sections(t *testing.T) {
	got := FallbackExpectations(sampleEvent())
	for _, section := range []string{
		"## Arrival and Check-in",
		"## Items to Bring",
		"## Responsibilities",
		"## Schedule",
		"## Contact",
	} {
		if !strings.Contains(got, section) {
			t.Fatalf("fallback expectations missing section %q", section)
		}
	}
}

func TestFallbacks_NeverEmpty(t *testing.T) {
	if strings.TrimSpace(FallbackDescription(event.Event{})) == "" {
		t.Fatalf("fallback description must not be empty")
	}
	if strings.TrimSpace(FallbackExpectations(event.Event{})) == "" {
		t.Fatalf("fallback expectations must not be empty")
	}
}
