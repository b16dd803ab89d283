package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/avaleri/burnboard/internal/api"
	"github.com/avaleri/burnboard/internal/billing"
	"github.com/avaleri/burnboard/internal/domain/activity"
	"github.com/avaleri/burnboard/internal/domain/project"
	"github.com/avaleri/burnboard/internal/domain/user"
)

// Client implements api.Client over the burnboard REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

var _ api.Client = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListProjects fetches all projects.
func (c *Client) ListProjects(ctx context.Context) ([]project.Project, error) {
	var projects []project.Project
	if err := c.get(ctx, "/project", &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, req project.CreateRequest) (*project.Project, error) {
	var created project.Project
	if err := c.post(ctx, "/project", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListActivities fetches a project's activities within the billing window.
// The date argument is the window qualifier concatenated with the
// epoch-millisecond window start.
func (c *Client) ListActivities(ctx context.Context, projectID string, w billing.Window) ([]activity.Activity, error) {
	query := url.Values{
		"projectId": {projectID},
		"date":      {w.DateParam()},
	}
	var activities []activity.Activity
	if err := c.get(ctx, "/activity?"+query.Encode(), &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// ListUsers fetches the full user collection, unfiltered.
func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := c.get(ctx, "/user", &users); err != nil {
		return nil, err
	}
	return users, nil
}

type envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", api.ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%w: decoding response: %v", api.ErrRequestFailed, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || !env.OK {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%w: %s", api.ErrRequestFailed, msg)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%w: decoding payload: %v", api.ErrRequestFailed, err)
		}
	}
	return nil
}
