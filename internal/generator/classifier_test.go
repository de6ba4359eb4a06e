package generator

import "testing"

func TestBestExample_SubstringMatch(t *testing.T) {
	got := DescriptionExamples.BestExample("Regional Career Fair Day")
	if got != careerFairDescriptionExample {
		t.Fatalf("expected the Career Fair example, got %q", got)
	}
}

func TestBestExample_CaseInsensitive(t *testing.T) {
	got := DescriptionExamples.BestExample("ANNUAL WORKSHOP SERIES")
	if got != workshopDescriptionExample {
		t.Fatalf("expected the Workshop example, got %q", got)
	}
}

func TestBestExample_WordOverlap(t *testing.T) {
	// No catalog keyword is a substring of "Fair of Opportunities", but
	// "fair" overlaps with the "Career Fair" keyword's words.
	got := DescriptionExamples.BestExample("Fair of Opportunities")
	if got != careerFairDescriptionExample {
		t.Fatalf("expected the Career Fair example via word overlap, got %q", got)
	}
}

func TestBestExample_NoMatchReturnsFirstEntry(t *testing.T) {
	got := DescriptionExamples.BestExample("Open House")
	if got == "" {
		t.Fatalf("expected the default example, got empty string")
	}
	if got != DescriptionExamples[0].Text {
		t.Fatalf("expected the first catalog entry as default, got %q", got)
	}
}

func TestBestExample_EmptyCatalog(t *testing.T) {
	var empty Catalog
	if got := empty.BestExample("anything"); got != "" {
		t.Fatalf("expected empty string from empty catalog, got %q", got)
	}
}

func TestInferAudience(t *testing.T) {
	cases := []struct {
		eventType string
		want      string
	}{
		{"Regional Career Fair Day", "students and job seekers"},
		{"Summer Internship Expo", "students and job seekers"},
		{"Cybersecurity Summer Camp", "students and educators"},
		{"Robotics Showcase", "students and educators"},
		{"Executive Networking Workshop", "professionals and educators"},
		{"Leadership Training", "professionals and educators"},
		{"Open House", "participants"},
	}
	for _, tc := range cases {
		if got := InferAudience(tc.eventType); got != tc.want {
			t.Fatalf("InferAudience(%q): expected %q, got %q", tc.eventType, tc.want, got)
		}
	}
}

func TestInferAudience_PriorityOrder(t *testing.T) {
	// "Science Careers Workshop" matches both the STEM set ("science") and
	// the professional set ("workshop"); the STEM set is checked first.
	got := InferAudience("Science Careers Workshop")
	if got != "students and educators" {
		t.Fatalf("expected the STEM set to win, got %q", got)
	}
}
