// Package generator produces event descriptions and volunteer-expectation
// documents from form data, delegating the prose to a hosted model and
// substituting deterministic fallback text when the model is unreachable.
// Public operations never fail: every call returns a usable string.
package generator

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/CIhekweazu03/DescriptionGenerator/internal/event"
)

// Outcome labels reported to recorders.
const (
	KindDescription  = "description"
	KindExpectations = "expectations"

	OutcomeModel    = "model"
	OutcomeFallback = "fallback"
)

// TextClient is the boundary to the hosted text-generation model. Any error
// (auth, network, quota, malformed response) is treated uniformly by the
// generator; it does not distinguish failure modes.
type TextClient interface {
	GenerateText(prompt string) (string, error)
}

// Recorder observes the outcome of each generation flow. Implementations
// must not fail the request; errors stay inside the recorder.
type Recorder interface {
	Record(kind, outcome, eventName, content string)
}

// Generator orchestrates the two generation flows. The catalogs are read-only,
// so a single Generator is safe to share across concurrent requests.
type Generator struct {
	client       TextClient
	descriptions Catalog
	volunteers   Catalog
	recorders    []Recorder
}

// New creates a Generator backed by the given client. A nil client is
// accepted: every request then takes the fallback path. Recorders, if any,
// observe each resolved flow.
func New(client TextClient, recorders ...Recorder) *Generator {
	return &Generator{
		client:       client,
		descriptions: DescriptionExamples,
		volunteers:   VolunteerExamples,
		recorders:    recorders,
	}
}

// Description generates the event description for ev. On any model failure it
// logs and returns the deterministic fallback; it never returns an error.
func (g *Generator) Description(ev event.Event) string {
	prompt := BuildDescriptionPrompt(DescriptionPromptData{
		EventName:        ev.EventName,
		EventType:        ev.EventType,
		Category:         ev.CategoryOrDefault(),
		LocationDetails:  ev.Location(),
		TimeInfo:         FormatSpan(ev.StartDate, ev.EndDate, ev.StartTime, ev.EndTime),
		VenueDescription: ev.VenueSentence(),
		RecurringInfo:    ev.RecurringSentence(),
		Audience:         InferAudience(ev.EventType),
		Example:          g.descriptions.BestExample(ev.EventType),
	})

	text, err := g.generate(prompt)
	if err != nil {
		slog.Warn("description generation failed, using fallback",
			"event", ev.EventName,
			"error", err,
		)
		text = FallbackDescription(ev)
		g.record(KindDescription, OutcomeFallback, ev.EventName, text)
		return text
	}

	g.record(KindDescription, OutcomeModel, ev.EventName, text)
	return text
}

// VolunteerExpectations generates the volunteer-expectations document for ev.
// description must be the already-resolved event description (model output or
// fallback); it is embedded in the prompt, so this flow runs after the
// description flow, not concurrently with it. Never returns an error.
func (g *Generator) VolunteerExpectations(ev event.Event, description string) string {
	prompt := BuildExpectationsPrompt(ExpectationsPromptData{
		EventName:   ev.EventName,
		EventType:   ev.EventType,
		TimeInfo:    FormatSpan(ev.StartDate, ev.EndDate, ev.StartTime, ev.EndTime),
		ArrivalTime: arrivalClock(ev.StartTime),
		MultiDay:    ev.MultiDay(),
		Description: description,
		Example:     g.volunteers.BestExample(ev.EventType),
	})

	text, err := g.generate(prompt)
	if err != nil {
		slog.Warn("expectations generation failed, using fallback",
			"event", ev.EventName,
			"error", err,
		)
		text = FallbackExpectations(ev)
		g.record(KindExpectations, OutcomeFallback, ev.EventName, text)
		return text
	}

	g.record(KindExpectations, OutcomeModel, ev.EventName, text)
	return text
}

// generate performs the single best-effort model call. A whitespace-only
// response is treated as unusable so the caller falls through to fallback.
func (g *Generator) generate(prompt string) (string, error) {
	if g.client == nil {
		return "", errors.New("text client not configured")
	}
	text, err := g.client.GenerateText(prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

func (g *Generator) record(kind, outcome, eventName, content string) {
	for _, r := range g.recorders {
		r.Record(kind, outcome, eventName, content)
	}
}
