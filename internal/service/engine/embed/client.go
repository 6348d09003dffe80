// Package embed provides sentence embeddings from an external embedding
// server (typically a sentence-transformers model behind a small HTTP API).
package embed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"ai-intro-scoring-service/internal/service/engine"
)

// Client implements engine.Embedder over HTTP.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

// New creates an embedding client. An empty baseURL yields a client that is
// permanently unavailable, which callers degrade to keyword-only matching.
func New(baseURL, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

type embedRequest struct {
	Model string   `json:"model"`
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Embeddings [][]float64 `json:"embeddings"`
}

// Embed posts the texts to /embed and returns one vector per text.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	if c.baseURL == "" {
		return nil, engine.ErrUnavailable
	}

	payload, err := json.Marshal(embedRequest{Model: c.model, Texts: texts})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embed", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("engine", "embed").Msg("Embedding request failed")
		return nil, fmt.Errorf("%w: %v", engine.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("engine", "embed").Msg("Embedding server returned non-OK status")
		return nil, fmt.Errorf("%w: status %d", engine.ErrUnavailable, resp.StatusCode)
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", engine.ErrUnavailable, err)
	}
	if len(out.Embeddings) != len(texts) {
		return nil, fmt.Errorf("%w: got %d embeddings for %d texts", engine.ErrUnavailable, len(out.Embeddings), len(texts))
	}
	return out.Embeddings, nil
}
