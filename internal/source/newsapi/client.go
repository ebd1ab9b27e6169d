package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"news_pusher/internal/domain"
)

// statusError marks a non-200 response. Only server-side codes are worth
// retrying; a 4xx will fail the same way on every attempt.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

func (e *statusError) retryable() bool {
	return e.code >= http.StatusInternalServerError
}

// Config holds news API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client fetches candidate items from the per-source news API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a news API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "newsapi"),
	}
}

// Fetch returns the latest candidate items for one source. The raw status
// field is passed through untouched; the caller decides what a non-success
// status means.
func (c *Client) Fetch(ctx context.Context, sourceID string) (*domain.FetchResult, error) {
	reqURL := fmt.Sprintf("%s?source=%s", c.baseURL, url.QueryEscape(sourceID))

	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		resp, err = c.doRequest(ctx, reqURL)
		if err == nil {
			return c.transform(resp), nil
		}

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return nil, fmt.Errorf("fetch %s: %w", sourceID, err)
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"source", sourceID,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, url string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsPusher/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode}
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transform(resp *APIResponse) *domain.FetchResult {
	result := &domain.FetchResult{
		Status: resp.Status,
		Items:  make([]domain.FetchItem, 0, len(resp.Items)),
	}

	for _, item := range resp.Items {
		fi := domain.FetchItem{
			Title: item.Title,
			URL:   item.URL,
		}
		if item.ID != nil {
			id := string(*item.ID)
			fi.ExternalID = &id
		}
		result.Items = append(result.Items, fi)
	}

	return result
}
