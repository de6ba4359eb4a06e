// Event type classification — keyword matching against fixed example catalogs
// plus rule-based target audience inference.
package generator

import "strings"

// CatalogEntry pairs an event-type keyword with a sample text used to steer
// model output toward the right register for that kind of event.
type CatalogEntry struct {
	Keyword string
	Text    string
}

// Catalog is an ordered, read-only keyword lookup table. Entry order matters:
// the first entry doubles as the default when nothing matches, and word-overlap
// matching scans entries in insertion order. Constructed once at startup and
// never mutated, so it is safe to share across concurrent requests.
type Catalog []CatalogEntry

// BestExample returns the example text best matching the given event type.
//
// Pass 1 looks for a catalog keyword appearing as a substring of the event
// type (case-insensitive). Pass 2 falls back to the first entry sharing any
// whitespace-delimited word with the event type. When neither pass matches,
// the first catalog entry is returned rather than an empty result — a
// default-of-last-resort kept for compatibility with the original form
// pipeline, even though it can hand back an unrelated example.
func (c Catalog) BestExample(eventType string) string {
	if len(c) == 0 {
		return ""
	}

	lowered := strings.ToLower(eventType)
	for _, entry := range c {
		if strings.Contains(lowered, strings.ToLower(entry.Keyword)) {
			return entry.Text
		}
	}

	words := make(map[string]bool)
	for _, w := range strings.Fields(lowered) {
		words[w] = true
	}
	for _, entry := range c {
		for _, w := range strings.Fields(strings.ToLower(entry.Keyword)) {
			if words[w] {
				return entry.Text
			}
		}
	}

	return c[0].Text
}

// audienceRules are checked in order; the first set containing a matching term
// wins. Order is significant since the term sets are not disjoint in principle
// (a "Cybersecurity Workshop" is a STEM audience, not a professional one).
var audienceRules = []struct {
	terms    []string
	audience string
}{
	{[]string{"career fair", "job", "internship"}, "students and job seekers"},
	{[]string{"stem", "science", "math", "cyber", "robotics", "camp"}, "students and educators"},
	{[]string{"workshop", "training", "professional"}, "professionals and educators"},
}

// InferAudience maps a free-text event type to a target-audience phrase.
// Unrecognized types get the generic "participants".
func InferAudience(eventType string) string {
	lowered := strings.ToLower(eventType)
	for _, rule := range audienceRules {
		for _, term := range rule.terms {
			if strings.Contains(lowered, term) {
				return rule.audience
			}
		}
	}
	return "participants"
}
