package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-intro-scoring-service/internal/app"
	"ai-intro-scoring-service/internal/config"
	"ai-intro-scoring-service/internal/events"
	"ai-intro-scoring-service/internal/models"
	"ai-intro-scoring-service/internal/service/engine/mock"
	"ai-intro-scoring-service/internal/service/rubric"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Configuration{
		Service: config.ServiceConfig{
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Analysis: config.AnalysisConfig{
			DefaultDurationSec:  52,
			MaxTranscriptLength: 200,
		},
		Observability: config.ObservabilityConfig{LogLevel: "error", LogFormat: "json"},
	}

	application := app.New(cfg)
	_ = application.Start()

	analyzer := rubric.NewAnalyzer(rubric.DefaultConfig(),
		&mock.Grammar{}, &mock.Sentiment{Score: 0.6}, &mock.Embedder{})
	handler := NewHandler(application, analyzer, events.New(nil))

	return NewRouter(handler, cfg.Service.CORSOrigins)
}

func TestAnalyze_OK(t *testing.T) {
	router := testRouter(t)

	body := `{"transcript": "Hello everyone. My name is Asha. Thank you.", "duration_seconds": 20}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res models.AnalysisResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(res.CriterionScores) != 8 {
		t.Errorf("expected 8 criterion scores, got %d", len(res.CriterionScores))
	}
	if res.WordCount != 8 {
		t.Errorf("expected word count 8, got %d", res.WordCount)
	}
	if res.OverallScore < 0 || res.OverallScore > 100 {
		t.Errorf("overall score %d out of range", res.OverallScore)
	}
}

func TestAnalyze_EmptyTranscript_Rejected(t *testing.T) {
	router := testRouter(t)

	for _, body := range []string{`{"transcript": ""}`, `{"transcript": "   "}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for body %s, got %d", body, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No transcript provided") {
			t.Errorf("expected rejection message, got %s", rec.Body.String())
		}
	}
}

func TestAnalyze_OversizedTranscript_Rejected(t *testing.T) {
	router := testRouter(t)

	long := strings.Repeat("word ", 100) // 500 chars, over the 200 limit
	body, _ := json.Marshal(map[string]string{"transcript": long})
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Transcript too long") {
		t.Errorf("expected oversize message, got %s", rec.Body.String())
	}
}

func TestAnalyze_BadJSON_Rejected(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", body["status"])
	}
}

func TestConfigInfo(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/config", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["max_transcript_length"] != float64(200) {
		t.Errorf("expected max_transcript_length 200, got %v", body["max_transcript_length"])
	}
	if body["default_duration_sec"] != float64(52) {
		t.Errorf("expected default_duration_sec 52, got %v", body["default_duration_sec"])
	}
}
