package analyses

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"careerhub-backend/internal/llm"
)

func newTestRouter(client *stubClient) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(client))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postAnalyze(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze-resume", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeResumeMissingFieldReturns400(t *testing.T) {
	stub := &stubClient{completion: validPayload}
	router := newTestRouter(stub)

	rec := postAnalyze(t, router, `{"resumeText": "some resume", "jobTitle": "Frontend Developer"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("model called %d times on invalid request, want 0", stub.calls)
	}

	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error.Code != "validation_error" {
		t.Fatalf("error code = %q, want validation_error", resp.Error.Code)
	}
}

func TestAnalyzeResumeMalformedBodyReturns400(t *testing.T) {
	router := newTestRouter(&stubClient{completion: validPayload})

	rec := postAnalyze(t, router, `{"resumeText": `)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeResumeReturnsModelResult(t *testing.T) {
	router := newTestRouter(&stubClient{completion: validPayload})

	rec := postAnalyze(t, router, `{"resumeText": "Developed web applications", "jobTitle": "Frontend Developer", "jobDescription": "Build React UIs"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.OverallScore != 82 {
		t.Fatalf("OverallScore = %d, want 82", result.OverallScore)
	}
}

func TestAnalyzeResumeServesStaticAdviceWhenModelDown(t *testing.T) {
	router := newTestRouter(&stubClient{err: errors.New("upstream timeout")})

	rec := postAnalyze(t, router, `{"resumeText": "Developed web applications", "jobTitle": "Frontend Developer", "jobDescription": "Build React UIs"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when the model is down", rec.Code)
	}

	var result AnalysisResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.OverallScore != 75 {
		t.Fatalf("OverallScore = %d, want fallback 75", result.OverallScore)
	}
	if result.CategoryScores.Clarity != 8 {
		t.Fatalf("Clarity = %d, want fallback 8", result.CategoryScores.Clarity)
	}
	if len(result.RewrittenExamples) == 0 || result.RewrittenExamples[0].Original != "Developed web applications" {
		t.Fatalf("unexpected rewritten examples: %+v", result.RewrittenExamples)
	}
}

func TestAnalyzeResumeReturns500WhenKeyMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewHandler(NewService(llm.PlaceholderClient{}))
	handler.RegisterRoutes(router.Group("/api/v1"))

	rec := postAnalyze(t, router, `{"resumeText": "Developed web applications", "jobTitle": "Frontend Developer", "jobDescription": "Build React UIs"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 when no API key is configured", rec.Code)
	}

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if resp.Error.Code != "config_error" {
		t.Fatalf("error code = %q, want config_error", resp.Error.Code)
	}
	if resp.Error.Message != "GEMINI_API_KEY not configured" {
		t.Fatalf("error message = %q", resp.Error.Message)
	}
}

func TestAnalyzeResumeWireFormatUsesSnakeCase(t *testing.T) {
	router := newTestRouter(&stubClient{completion: validPayload})

	rec := postAnalyze(t, router, `{"resumeText": "r", "jobTitle": "t", "jobDescription": "d"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, key := range []string{"overall_score", "category_scores", "ats_keywords_to_add", "rewritten_examples"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("response missing key %q", key)
		}
	}
}
