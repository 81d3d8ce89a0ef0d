// Package metrics exposes tokplot's Prometheus series.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every series.
const Namespace = "tokplot"

// Submission outcomes.
const (
	OutcomeOK             = "ok"
	OutcomeMissingInput   = "missing_input"
	OutcomeInvalidRequest = "invalid_request"
	OutcomeEmptyTokens    = "empty_tokens"
	OutcomeTokenizerError = "tokenizer_error"
	OutcomeRateLimited    = "rate_limited"
)

// Collector owns a private registry so several servers (and tests) can
// coexist in one process.
type Collector struct {
	registry *prometheus.Registry

	submissions *prometheus.CounterVec
	tokens      prometheus.Histogram
	historySize prometheus.Gauge
}

// NewCollector registers the tokplot series plus Go runtime and process
// collectors on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "submissions_total",
				Help:      "Sentence submissions by outcome.",
			},
			[]string{"outcome"},
		),
		tokens: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "tokens_per_submission",
			Help:      "Number of tokens produced per accepted submission.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
		historySize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "history_size",
			Help:      "Sentences currently held in the history.",
		}),
	}
}

// RecordSubmission counts one submission. tokens is observed only for
// accepted submissions.
func (c *Collector) RecordSubmission(outcome string, tokens int) {
	c.submissions.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		c.tokens.Observe(float64(tokens))
	}
}

func (c *Collector) SetHistorySize(n int) {
	c.historySize.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
