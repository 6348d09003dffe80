// Package http exposes the scoring API over HTTP.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"ai-intro-scoring-service/internal/app"
	"ai-intro-scoring-service/internal/events"
	"ai-intro-scoring-service/internal/models"
	"ai-intro-scoring-service/internal/observability/logging"
	"ai-intro-scoring-service/internal/observability/metrics"
	"ai-intro-scoring-service/internal/service/rubric"
)

// Handler serves the scoring API endpoints.
type Handler struct {
	app       *app.Application
	analyzer  *rubric.Analyzer
	publisher *events.Publisher
	metrics   *metrics.Metrics
	log       zerolog.Logger
}

// NewHandler wires the analyzer and publisher into the API handler.
func NewHandler(application *app.Application, analyzer *rubric.Analyzer, publisher *events.Publisher) *Handler {
	return &Handler{
		app:       application,
		analyzer:  analyzer,
		publisher: publisher,
		metrics:   metrics.DefaultMetrics,
		log:       logging.WithComponent("http"),
	}
}

// Analyze handles POST /analyze: transcript in, rubric result out.
// Input errors are the only failures surfaced to the caller; engine
// failures inside the pipeline degrade to default sub-scores instead.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.RecordRejected("bad_json")
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if strings.TrimSpace(req.Transcript) == "" {
		h.metrics.RecordRejected("empty")
		writeError(w, http.StatusBadRequest, "No transcript provided")
		return
	}

	maxLen := h.app.Cfg.Analysis.MaxTranscriptLength
	if len(req.Transcript) > maxLen {
		h.metrics.RecordRejected("too_long")
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Transcript too long. Maximum %d characters allowed.", maxLen))
		return
	}

	result := h.analyzer.Analyze(r.Context(), req.Transcript, req.DurationSeconds)

	// Best effort: a publish failure never fails the request.
	if err := h.publisher.Publish(r.Context(), middleware.GetReqID(r.Context()), events.AnalysisCompleted{
		EventType:       "analysis.completed",
		Timestamp:       time.Now().UnixMilli(),
		OverallScore:    result.OverallScore,
		CriterionScores: result.CriterionScores,
		WordCount:       result.WordCount,
	}); err != nil {
		h.log.Warn().Err(err).Msg("Failed to publish analysis event")
	}

	writeJSON(w, http.StatusOK, result)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime_seconds": int64(h.app.Uptime().Seconds()),
	})
}

// ConfigInfo handles GET /config, echoing the active non-secret settings.
func (h *Handler) ConfigInfo(w http.ResponseWriter, _ *http.Request) {
	cfg := h.app.Cfg
	writeJSON(w, http.StatusOK, map[string]any{
		"max_transcript_length": cfg.Analysis.MaxTranscriptLength,
		"default_duration_sec":  cfg.Analysis.DefaultDurationSec,
		"cors_origins":          cfg.Service.CORSOrigins,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
