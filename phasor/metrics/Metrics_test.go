package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(FramesProcessed)

	FramesProcessed.Inc()

	after := testutil.ToFloat64(FramesProcessed)

	if after != before+1 {
		t.Fatalf("expected FramesProcessed to increment by 1, before=%v after=%v", before, after)
	}
}

func TestFrameLatencyHistogramObserves(t *testing.T) {
	// Observing must not panic, and the histogram must remain a single collected metric.
	before := testutil.CollectAndCount(FrameLatencyMilliseconds)

	FrameLatencyMilliseconds.Observe(12.5)

	after := testutil.CollectAndCount(FrameLatencyMilliseconds)

	if after != before {
		t.Fatalf("expected collector count to remain stable across Observe, before=%d after=%d", before, after)
	}
}
