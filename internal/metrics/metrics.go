package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	questionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mobility_engine",
			Name:      "questions_total",
			Help:      "Total number of questions handled, partitioned by outcome.",
		},
		[]string{"outcome"},
	)

	answerDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mobility_engine",
			Name:      "answer_seconds",
			Help:      "Question answering latency in seconds.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	fallbackStepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mobility_engine",
			Name:      "fallback_steps_total",
			Help:      "Relaxation steps applied by the fallback cascade, partitioned by step kind.",
		},
		[]string{"step"},
	)

	synthesisFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "mobility_engine",
			Name:      "synthesis_failures_total",
			Help:      "Requests where the reformulation layer failed and the synthesis section was omitted.",
		},
	)
)

// Register attaches the engine collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		questionsTotal,
		answerDurationSeconds,
		fallbackStepsTotal,
		synthesisFailuresTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveQuestion records a handled question with its outcome label.
func ObserveQuestion(duration time.Duration, outcome string) {
	if outcome == "" {
		outcome = "unknown"
	}
	questionsTotal.WithLabelValues(outcome).Inc()
	if duration < 0 {
		duration = 0
	}
	answerDurationSeconds.Observe(duration.Seconds())
}

// ObserveFallbackStep counts one applied relaxation.
func ObserveFallbackStep(step string) {
	fallbackStepsTotal.WithLabelValues(step).Inc()
}

// ObserveSynthesisFailure counts one omitted synthesis section.
func ObserveSynthesisFailure() {
	synthesisFailuresTotal.Inc()
}
