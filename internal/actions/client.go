package actions

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const runsPerPage = 100

// WorkflowRun is one GitHub Actions run, reduced to what deletion needs.
type WorkflowRun struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type runsResponse struct {
	TotalCount   int           `json:"total_count"`
	WorkflowRuns []WorkflowRun `json:"workflow_runs"`
}

// Client talks to the GitHub Actions REST API for one repository.
type Client struct {
	http   *resty.Client
	owner  string
	repo   string
	pacing time.Duration
}

type Config struct {
	BaseURL string
	Token   string
	Owner   string
	Repo    string
	// Pacing is the pause between consecutive API calls, to stay under the
	// rate limit.
	Pacing time.Duration
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	pacing := cfg.Pacing
	if pacing == 0 {
		pacing = 500 * time.Millisecond
	}

	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/vnd.github.v3+json").
		SetHeader("Authorization", "token "+cfg.Token)

	return &Client{
		http:   rc,
		owner:  cfg.Owner,
		repo:   cfg.Repo,
		pacing: pacing,
	}
}

// ListAllRuns fetches every workflow run for the repository, walking the
// pagination until a page comes back empty.
func (c *Client) ListAllRuns(ctx context.Context) ([]WorkflowRun, error) {
	var all []WorkflowRun

	for page := 1; ; page++ {
		var body runsResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("per_page", fmt.Sprintf("%d", runsPerPage)).
			SetQueryParam("page", fmt.Sprintf("%d", page)).
			SetResult(&body).
			Get(fmt.Sprintf("/repos/%s/%s/actions/runs", c.owner, c.repo))
		if err != nil {
			return nil, fmt.Errorf("list runs page %d: %w", page, err)
		}
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("list runs page %d: unexpected status %d: %s", page, resp.StatusCode(), resp.String())
		}

		if len(body.WorkflowRuns) == 0 {
			break
		}
		all = append(all, body.WorkflowRuns...)

		if len(body.WorkflowRuns) < runsPerPage {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pacing):
		}
	}

	return all, nil
}

// DeleteRun deletes one workflow run by id. GitHub answers 204 on success.
func (c *Client) DeleteRun(ctx context.Context, runID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/repos/%s/%s/actions/runs/%d", c.owner, c.repo, runID))
	if err != nil {
		return fmt.Errorf("delete run %d: %w", runID, err)
	}
	if resp.StatusCode() != http.StatusNoContent {
		return fmt.Errorf("delete run %d: unexpected status %d: %s", runID, resp.StatusCode(), resp.String())
	}
	return nil
}

// Pacing returns the configured inter-call pause.
func (c *Client) Pacing() time.Duration {
	return c.pacing
}
