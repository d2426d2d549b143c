package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIncEncode(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.IncEncode()
	c.IncEncode()

	if got := testutil.ToFloat64(c.encodes); got != 2 {
		t.Fatalf("encode_calls_total = %v, want 2", got)
	}
}

func TestIncUnknown(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.IncUnknown()

	if got := testutil.ToFloat64(c.unknown); got != 1 {
		t.Fatalf("unknown_tokens_total = %v, want 1", got)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector
	c.IncEncode()
	c.IncUnknown()
}
