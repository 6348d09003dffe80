package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"
)

const sampleTranscript = `Good morning everyone, I am thrilled to share a little about myself today. ` +
	`My name is Asha Verma and I am twelve years old. I study in class seven at Green Valley School. ` +
	`I live with my parents and my younger brother, and my family loves traveling together. ` +
	`In my free time I enjoy painting and playing badminton. My favorite subject is science because ` +
	`I love doing experiments. Thank you for listening.`

func main() {
	addr := flag.String("addr", "http://localhost:5000", "scoring service base URL")
	duration := flag.Float64("duration", 0, "speaking duration in seconds (0 = server default)")
	flag.Parse()

	payload, err := json.Marshal(map[string]any{
		"transcript":       sampleTranscript,
		"duration_seconds": *duration,
	})
	if err != nil {
		log.Fatalf("failed to marshal request: %v", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(*addr+"/analyze", "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("failed to call /analyze: %v", err)
	}
	defer resp.Body.Close()

	var result struct {
		OverallScore     int               `json:"overall_score"`
		CriterionScores  map[string]int    `json:"criterion_scores"`
		DetailedFeedback map[string]string `json:"detailed_feedback"`
		WordCount        int               `json:"word_count"`
		SentenceCount    int               `json:"sentence_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatalf("failed to decode response: %v", err)
	}

	log.Printf("status=%s overall=%d words=%d sentences=%d",
		resp.Status, result.OverallScore, result.WordCount, result.SentenceCount)
	for id, fb := range result.DetailedFeedback {
		log.Printf("  %s: %s", id, fb)
	}
}
