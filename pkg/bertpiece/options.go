package bertpiece

import "github.com/crimson-sun/bertpiece/internal/metrics"

type options struct {
	metrics *metrics.Collector
}

// Option configures a Tokenizer.
type Option func(*options)

// WithMetrics wires a metrics.Collector into the Tokenizer so encode-call
// and [UNK]-fallback counts are reported to Prometheus. Telemetry only —
// Tokenizer works identically, metrics or not.
func WithMetrics(c *metrics.Collector) Option {
	return func(o *options) { o.metrics = c }
}

func defaultOptions() options {
	return options{}
}
