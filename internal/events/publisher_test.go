package events

import (
	"context"
	"testing"
)

func TestNew_DisabledMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{"nil config", nil},
		{"disabled", &Config{Enabled: false, Brokers: []string{"localhost:9092"}}},
		{"no brokers", &Config{Enabled: true, Brokers: []string{}}},
		{"nil brokers", &Config{Enabled: true, Brokers: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.cfg)
			if p == nil {
				t.Fatal("expected non-nil publisher")
			}
			if p.enabled {
				t.Error("expected publisher to be disabled")
			}
			if p.writer != nil {
				t.Error("expected nil writer when disabled")
			}
		})
	}
}

func TestNew_ConfigValues(t *testing.T) {
	cfg := &Config{
		Enabled:   false,
		Brokers:   []string{"localhost:9092"},
		Topic:     "intro.analysis.completed",
		Principal: "test-principal",
	}

	p := New(cfg)

	if p.principal != "test-principal" {
		t.Errorf("expected principal 'test-principal', got %s", p.principal)
	}
	if p.topic != "intro.analysis.completed" {
		t.Errorf("expected topic 'intro.analysis.completed', got %s", p.topic)
	}
}

func TestPublish_Disabled(t *testing.T) {
	p := New(&Config{Enabled: false, Topic: "t"})

	event := AnalysisCompleted{
		EventType:       "analysis.completed",
		OverallScore:    87,
		CriterionScores: map[string]int{"clarity": 15},
		WordCount:       120,
	}
	if err := p.Publish(context.Background(), "req-1", event); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestClose_Disabled(t *testing.T) {
	p := New(nil)
	if err := p.Close(); err != nil {
		t.Errorf("expected nil close error when disabled, got %v", err)
	}
}
