package generator

import (
	"strings"
	"testing"
)

func samplePromptData() DescriptionPromptData {
	return DescriptionPromptData{
		EventName:        "Spring Career Fair",
		EventType:        "Career Fair",
		Category:         "Community",
		LocationDetails:  "Convention Center, Springfield, IL",
		TimeInfo:         "Sunday, June 15, 2025, 9:00 AM to 5:00 PM",
		VenueDescription: "This event will be held indoors.",
		RecurringInfo:    "",
		Audience:         "students and job seekers",
		Example:          "example text",
	}
}

func TestBuildDescriptionPrompt_Idempotent(t *testing.T) {
	d := samplePromptData()
	first := BuildDescriptionPrompt(d)
	second := BuildDescriptionPrompt(d)
	if first != second {
		t.Fatalf("expected byte-identical prompts for identical input")
	}
}

func TestBuildDescriptionPrompt_ContainsFields(t *testing.T) {
	prompt := BuildDescriptionPrompt(samplePromptData())

	for _, want := range []string{
		"Event Name: Spring Career Fair",
		"Location: Convention Center, Springfield, IL",
		"When: Sunday, June 15, 2025, 9:00 AM to 5:00 PM",
		"Target Audience: students and job seekers",
		"example text",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildDescriptionPrompt_EmptyFieldsKeepLabels(t *testing.T) {
	prompt := BuildDescriptionPrompt(DescriptionPromptData{})

	// Label lines stay even when their values are blank.
	for _, label := range []string{
		"Event Name:",
		"Venue Type:",
		"Recurring Information:",
	} {
		if !strings.Contains(prompt, label) {
			t.Fatalf("prompt missing label %q", label)
		}
	}
}

func TestBuildExpectationsPrompt(t *testing.T) {
	d := ExpectationsPromptData{
		EventName:   "Spring Career Fair",
		EventType:   "Career Fair",
		TimeInfo:    "Sunday, June 15, 2025, 9:00 AM to 5:00 PM",
		ArrivalTime: "8:15 AM",
		MultiDay:    false,
		Description: "A big fair.",
		Example:     "volunteer example",
	}

	prompt := BuildExpectationsPrompt(d)
	for _, want := range []string{
		"Event Name: Spring Career Fair",
		"Multi-Day Event: No",
		"Suggested Volunteer Arrival: 8:15 AM",
		"Event Description: A big fair.",
		"volunteer example",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}

	d.MultiDay = true
	if !strings.Contains(BuildExpectationsPrompt(d), "Multi-Day Event: Yes") {
		t.Fatalf("expected multi-day flag to render as Yes")
	}
}

func TestBuildExpectationsPrompt_Idempotent(t *testing.T) {
	d := ExpectationsPromptData{EventName: "X", Description: "Y"}
	if BuildExpectationsPrompt(d) != BuildExpectationsPrompt(d) {
		t.Fatalf("expected byte-identical prompts for identical input")
	}
}
