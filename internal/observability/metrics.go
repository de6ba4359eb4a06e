package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GenerationMetrics counts generation flows by kind and outcome.
type GenerationMetrics struct {
	Generations *prometheus.CounterVec
}

// NewGenerationMetrics registers and returns the generation counters.
func NewGenerationMetrics(reg prometheus.Registerer) *GenerationMetrics {
	m := &GenerationMetrics{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eventgen",
				Name:      "generations_total",
				Help:      "Generation flows resolved, by kind and outcome.",
			},
			[]string{"kind", "outcome"}, // kind=description|expectations, outcome=model|fallback
		),
	}

	if reg != nil {
		reg.MustRegister(m.Generations)
	}

	return m
}

// Record implements generator.Recorder.
func (m *GenerationMetrics) Record(kind, outcome, eventName, content string) {
	m.Generations.WithLabelValues(kind, outcome).Inc()
}
