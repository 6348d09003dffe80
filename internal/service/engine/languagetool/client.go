// Package languagetool provides a grammar checker backed by a LanguageTool
// server (self-hosted or the public API).
package languagetool

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"ai-intro-scoring-service/internal/service/engine"
)

// Client implements engine.GrammarChecker against the LanguageTool v2 API.
type Client struct {
	baseURL  string
	language string
	http     *http.Client
}

// New creates a LanguageTool client. The timeout bounds every check; a
// request that exceeds it is reported as engine.ErrUnavailable.
func New(baseURL, language string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		http:     &http.Client{Timeout: timeout},
	}
}

type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
		Offset  int    `json:"offset"`
		Length  int    `json:"length"`
	} `json:"matches"`
}

// Check posts the text to /v2/check and returns the number of matches.
func (c *Client) Check(ctx context.Context, text string) (int, error) {
	if c.baseURL == "" {
		return 0, engine.ErrUnavailable
	}

	form := url.Values{
		"text":     {text},
		"language": {c.language},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("engine", "languagetool").Msg("Grammar check request failed")
		return 0, fmt.Errorf("%w: %v", engine.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("engine", "languagetool").Msg("Grammar check returned non-OK status")
		return 0, fmt.Errorf("%w: status %d", engine.ErrUnavailable, resp.StatusCode)
	}

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("%w: decode: %v", engine.ErrUnavailable, err)
	}
	return len(out.Matches), nil
}
