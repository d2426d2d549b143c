// Package metrics exposes optional Prometheus counters for the tokenizer.
// Unknown-token events are not errors (spec: they "may optionally be
// counted for telemetry"); this package is how a caller opts into that.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Collector holds the counters a Tokenizer reports into when wired with
// bertpiece.WithMetrics. A nil *Collector is safe to call methods on — all
// methods are no-ops — so wiring metrics is always optional.
type Collector struct {
	encodes prometheus.Counter
	unknown prometheus.Counter
}

// NewCollector creates a Collector and registers its counters against reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics
// handler, or a fresh *prometheus.Registry in tests.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		encodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bertpiece",
			Name:      "encode_calls_total",
			Help:      "Total number of Tokenizer.Encode calls.",
		}),
		unknown: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "bertpiece",
			Name:      "unknown_tokens_total",
			Help:      "Total number of word spans that fell back to [UNK] after exhausting the clean/normalize/strip-diacritics chain.",
		}),
	}
	reg.MustRegister(c.encodes, c.unknown)
	return c
}

// IncEncode records one Encode call. Safe to call on a nil Collector.
func (c *Collector) IncEncode() {
	if c == nil {
		return
	}
	c.encodes.Inc()
}

// IncUnknown records one [UNK]-fallback event. Safe to call on a nil
// Collector.
func (c *Collector) IncUnknown() {
	if c == nil {
		return
	}
	c.unknown.Inc()
}
