package timeclock

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrTaskRequired indicates a timer mutation was attempted without a task.
// It is surfaced before any request is made.
var ErrTaskRequired = errors.New("task id required")

// API defines the operations the rest of punch needs from the timeclock
// backend. It is implemented by *Client and can be stubbed in tests.
type API interface {
	FetchToday(ctx context.Context) (*TodayResponse, error)
	FetchTasks(ctx context.Context) ([]Task, error)
	StartTimer(ctx context.Context, taskID string) error
	TogglePause(ctx context.Context) error
	StopTimer(ctx context.Context) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the workforce backend's timeclock HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:8460"
	defaultUserAgent = "punch/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the provided api_base value. The bearer
// token may be empty for deployments without authentication.
func NewClient(apiBase, token string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		token:     token,
		userAgent: defaultUserAgent,
	}, nil
}

// FetchToday retrieves the authoritative time-log snapshot for the current day.
func (c *Client) FetchToday(ctx context.Context) (*TodayResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload TodayResponse
	if err := c.do(ctx, http.MethodGet, "/api/timelogs/today", nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchTasks retrieves the tasks assigned to the authenticated employee.
func (c *Client) FetchTasks(ctx context.Context) ([]Task, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload TaskListResponse
	if err := c.do(ctx, http.MethodGet, "/api/tasks/assigned", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Items, nil
}

// StartTimer opens a work entry for the given task. An empty task id fails
// locally with ErrTaskRequired; no request is made.
func (c *Client) StartTimer(ctx context.Context, taskID string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(taskID) == "" {
		return ErrTaskRequired
	}
	body := struct {
		TaskID string `json:"taskId"`
	}{TaskID: taskID}
	return c.do(ctx, http.MethodPost, "/api/timelogs/start", body, nil)
}

// TogglePause switches the running entry between work and break.
func (c *Client) TogglePause(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/timelogs/pause", nil, nil)
}

// StopTimer closes the running entry for the day.
func (c *Client) StopTimer(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodPost, "/api/timelogs/stop", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
