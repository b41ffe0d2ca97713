package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/writewise/writewise/pkg/logging"
	"github.com/writewise/writewise/pkg/ratelimit"
)

// LanguageTool checks text against a LanguageTool server's /v2/check
// endpoint. It is safe for concurrent use; the underlying http.Client
// handles connection pooling.
type LanguageTool struct {
	baseURL  string
	language string
	client   *http.Client
	limiter  *ratelimit.Limiter
	log      zerolog.Logger
}

// LanguageToolOption configures a LanguageTool client.
type LanguageToolOption func(*LanguageTool)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) LanguageToolOption {
	return func(lt *LanguageTool) { lt.client = c }
}

// WithLimiter throttles requests to the server.
func WithLimiter(l *ratelimit.Limiter) LanguageToolOption {
	return func(lt *LanguageTool) { lt.limiter = l }
}

// NewLanguageTool creates a client for the LanguageTool server at baseURL
// (e.g. "http://localhost:8010") checking text in the given language
// (e.g. "en-US").
func NewLanguageTool(baseURL, language string, opts ...LanguageToolOption) *LanguageTool {
	lt := &LanguageTool{
		baseURL:  strings.TrimRight(baseURL, "/"),
		language: language,
		client:   &http.Client{Timeout: 30 * time.Second},
		log:      logging.GetLogger("languagetool"),
	}
	for _, opt := range opts {
		opt(lt)
	}
	return lt
}

// ltResponse mirrors the relevant part of the LanguageTool JSON response.
type ltResponse struct {
	Matches []struct {
		Message      string `json:"message"`
		Offset       int    `json:"offset"`
		Length       int    `json:"length"`
		Replacements []struct {
			Value string `json:"value"`
		} `json:"replacements"`
		Rule struct {
			ID       string `json:"id"`
			Category struct {
				ID string `json:"id"`
			} `json:"category"`
		} `json:"rule"`
	} `json:"matches"`
}

// Check sends text to the server and returns the flagged spans.
func (lt *LanguageTool) Check(ctx context.Context, text string) ([]Match, error) {
	if lt.limiter != nil {
		if err := lt.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", lt.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		lt.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("building check request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := lt.client.Do(req)
	if err != nil {
		if lt.limiter != nil {
			lt.limiter.RecordError()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if lt.limiter != nil {
			lt.limiter.RecordError()
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed ltResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding check response: %w", err)
	}
	if lt.limiter != nil {
		lt.limiter.RecordSuccess()
	}

	matches := make([]Match, 0, len(parsed.Matches))
	for _, m := range parsed.Matches {
		replacements := make([]string, 0, len(m.Replacements))
		for _, r := range m.Replacements {
			replacements = append(replacements, r.Value)
		}
		matches = append(matches, Match{
			Message:      m.Message,
			RuleID:       m.Rule.ID,
			Category:     m.Rule.Category.ID,
			Offset:       m.Offset,
			Length:       m.Length,
			Replacements: replacements,
		})
	}

	lt.log.Debug().
		Int("text_length", len(text)).
		Int("matches", len(matches)).
		Msg("Grammar check completed")

	return matches, nil
}

// Close releases the client's idle connections.
func (lt *LanguageTool) Close() error {
	lt.client.CloseIdleConnections()
	return nil
}
