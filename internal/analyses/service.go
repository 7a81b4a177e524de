package analyses

import (
	"context"
	"errors"
	"time"

	"careerhub-backend/internal/llm"
	"careerhub-backend/internal/shared/metrics"
	"careerhub-backend/internal/shared/telemetry"
)

// Fallback reasons, surfaced in logs and metrics so a quiet degradation to
// static advice is still visible to operators.
const (
	FallbackUpstreamError   = "upstream_error"
	FallbackValidationError = "validation_error"
)

// Service runs the analysis pipeline: prompt, inference, parse, and the
// static fallback when any of those fail.
type Service struct {
	LLM llm.Client
}

func NewService(client llm.Client) *Service {
	return &Service{LLM: client}
}

// Analyze produces an analysis for the request. Invalid requests return
// ErrInvalidRequest and a missing API key returns llm.ErrNotConfigured;
// every other failure mode degrades to the fallback result. The returned
// reason is empty for genuine model output and names the failure otherwise.
func (s *Service) Analyze(ctx context.Context, req AnalysisRequest) (AnalysisResult, string, error) {
	if err := req.Validate(); err != nil {
		return AnalysisResult{}, "", err
	}

	metrics.IncAnalysisRequested()
	start := time.Now()
	defer func() {
		metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Milliseconds()))
	}()

	prompt := llm.BuildAnalysisPrompt(req.ResumeText, req.JobTitle, req.JobDescription)

	completion, err := s.LLM.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			metrics.IncConfigError()
			telemetry.Error("analysis.config_missing", map[string]any{
				"error": err.Error(),
			})
			return AnalysisResult{}, "", err
		}
		metrics.IncFallbackUpstream()
		telemetry.Warn("analysis.fallback", map[string]any{
			"reason": FallbackUpstreamError,
			"error":  err.Error(),
		})
		return FallbackResult(), FallbackUpstreamError, nil
	}

	result, err := ParseAnalysis(completion)
	if err != nil {
		metrics.IncFallbackValidation()
		telemetry.Warn("analysis.fallback", map[string]any{
			"reason": FallbackValidationError,
			"error":  err.Error(),
		})
		return FallbackResult(), FallbackValidationError, nil
	}

	metrics.IncAnalysisCompleted()
	return result, "", nil
}
