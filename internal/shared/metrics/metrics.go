package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	analysisRequestsTotal  atomic.Uint64
	analysisCompletedTotal atomic.Uint64

	configErrorsTotal       atomic.Uint64
	fallbackUpstreamTotal   atomic.Uint64
	fallbackValidationTotal atomic.Uint64

	extractionRequestsTotal atomic.Uint64
	extractionFailedTotal   atomic.Uint64

	suggestionFallbackTotal atomic.Uint64

	analysisDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncAnalysisRequested increments the analysis request counter.
func IncAnalysisRequested() {
	analysisRequestsTotal.Add(1)
}

// IncAnalysisCompleted increments the counter for analyses served from the model.
func IncAnalysisCompleted() {
	analysisCompletedTotal.Add(1)
}

// IncConfigError counts analyses rejected because inference is not configured.
func IncConfigError() {
	configErrorsTotal.Add(1)
}

// IncFallbackUpstream counts fallbacks caused by inference call failures.
func IncFallbackUpstream() {
	fallbackUpstreamTotal.Add(1)
}

// IncFallbackValidation counts fallbacks caused by unusable model output.
func IncFallbackValidation() {
	fallbackValidationTotal.Add(1)
}

// IncExtractionRequested increments the PDF extraction request counter.
func IncExtractionRequested() {
	extractionRequestsTotal.Add(1)
}

// IncExtractionFailed counts extractions downgraded to the manual-entry placeholder.
func IncExtractionFailed() {
	extractionFailedTotal.Add(1)
}

// IncSuggestionFallback counts learning/career suggestions served from the static catalog.
func IncSuggestionFallback() {
	suggestionFallbackTotal.Add(1)
}

// ObserveAnalysisDurationMs records an end-to-end analysis duration in milliseconds.
func ObserveAnalysisDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	analysisDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "analysis_requests_total", "Total resume analyses requested", analysisRequestsTotal.Load())
	writeCounter(&buf, "analysis_completed_total", "Total resume analyses served from model output", analysisCompletedTotal.Load())
	writeCounter(&buf, "analysis_config_errors_total", "Analyses rejected because no API key was configured", configErrorsTotal.Load())
	writeCounter(&buf, "analysis_fallback_upstream_total", "Analyses served the fallback after an inference call failure", fallbackUpstreamTotal.Load())
	writeCounter(&buf, "analysis_fallback_validation_total", "Analyses served the fallback after unusable model output", fallbackValidationTotal.Load())
	writeCounter(&buf, "extraction_requests_total", "Total PDF extraction requests", extractionRequestsTotal.Load())
	writeCounter(&buf, "extraction_failed_total", "Extractions downgraded to the manual-entry placeholder", extractionFailedTotal.Load())
	writeCounter(&buf, "suggestion_fallback_total", "Suggestion responses served from the static catalog", suggestionFallbackTotal.Load())
	writeHistogram(&buf, "analysis_duration_ms", "Analysis duration in milliseconds", analysisDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	// Observe stores cumulative bucket counts, so they render as-is.
	for i, bound := range snap.buckets {
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), snap.counts[i])
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
