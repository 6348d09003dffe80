package languagetool

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-intro-scoring-service/internal/service/engine"
)

func TestCheck_CountsMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v2/check" {
			t.Errorf("expected path /v2/check, got %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if lang := r.PostForm.Get("language"); lang != "en-US" {
			t.Errorf("expected language en-US, got %s", lang)
		}
		if text := r.PostForm.Get("text"); text == "" {
			t.Error("expected non-empty text field")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"matches":[{"message":"a","offset":0,"length":2},{"message":"b","offset":5,"length":3}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "en-US", 5*time.Second)
	count, err := c.Check(context.Background(), "me has went there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 matches, got %d", count)
	}
}

func TestCheck_NoIssues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"matches":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "en-US", 5*time.Second)
	count, err := c.Check(context.Background(), "This sentence is fine.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 matches, got %d", count)
	}
}

func TestCheck_ServerError_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, "en-US", 5*time.Second)
	_, err := c.Check(context.Background(), "text")
	if !errors.Is(err, engine.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestCheck_ConnectionRefused_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // shut down before use

	c := New(srv.URL, "en-US", time.Second)
	_, err := c.Check(context.Background(), "text")
	if !errors.Is(err, engine.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestCheck_NoBaseURL_Unavailable(t *testing.T) {
	c := New("", "en-US", time.Second)
	_, err := c.Check(context.Background(), "text")
	if !errors.Is(err, engine.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}
