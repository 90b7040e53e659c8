package tagger

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the counters of a SentenceTagger.
type Metrics struct {
	Sentences       prometheus.Counter
	Padded          prometheus.Counter
	Unresolved      *prometheus.CounterVec
	AlignmentErrors prometheus.Counter
	ModelDuration   prometheus.Histogram
}

// NewMetrics creates the tagger metrics and registers them on reg when reg
// is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Sentences: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "segtag",
			Subsystem: "tagger",
			Name:      "sentences_total",
			Help:      "Total number of sentences sent to the tagging model",
		}),

		Padded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "segtag",
			Subsystem: "tagger",
			Name:      "padded_sentences_total",
			Help:      "Total number of single word sentences padded before tagging",
		}),

		Unresolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "segtag",
				Subsystem: "posmap",
				Name:      "unresolved_total",
				Help:      "Total number of tags missing from the pos map",
			},
			[]string{"tag"},
		),

		AlignmentErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "segtag",
			Subsystem: "tagger",
			Name:      "alignment_errors_total",
			Help:      "Total number of sentences whose tag count did not match the token count",
		}),

		ModelDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "segtag",
			Subsystem: "tagger",
			Name:      "model_duration_seconds",
			Help:      "Time spent waiting for and running the tagging model",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Sentences, m.Padded, m.Unresolved, m.AlignmentErrors, m.ModelDuration)
	}

	return m
}
