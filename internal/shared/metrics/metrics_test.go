package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramBucketsStayCumulative(t *testing.T) {
	h := newHistogram([]float64{100, 250, 500})
	h.Observe(50)
	h.Observe(50)
	h.Observe(200)
	h.Observe(900)

	var buf bytes.Buffer
	writeHistogram(&buf, "test_duration_ms", "help", h.Snapshot())
	out := buf.String()

	wantLines := []string{
		`test_duration_ms_bucket{le="100"} 2`,
		`test_duration_ms_bucket{le="250"} 3`,
		`test_duration_ms_bucket{le="500"} 3`,
		`test_duration_ms_bucket{le="+Inf"} 4`,
		`test_duration_ms_sum 1200`,
		`test_duration_ms_count 4`,
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line+"\n") {
			t.Fatalf("rendered histogram missing %q:\n%s", line, out)
		}
	}
}

func TestHistogramRenderIsStableAcrossSnapshots(t *testing.T) {
	h := newHistogram([]float64{10})
	h.Observe(5)

	var first, second bytes.Buffer
	writeHistogram(&first, "stable_ms", "help", h.Snapshot())
	writeHistogram(&second, "stable_ms", "help", h.Snapshot())
	if first.String() != second.String() {
		t.Fatalf("repeated renders diverged:\n%s\n---\n%s", first.String(), second.String())
	}
	if !strings.Contains(first.String(), `stable_ms_bucket{le="10"} 1`) {
		t.Fatalf("bucket count drifted:\n%s", first.String())
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	IncExtractionRequested()
	out := Render()
	for _, name := range []string{
		"analysis_requests_total",
		"extraction_requests_total",
		"analysis_duration_ms_bucket",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("render output missing metric %s:\n%s", name, out)
		}
	}
}
