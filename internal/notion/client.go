package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.notion.com/v1"

// Config tunes a Client. Zero values fall back to sensible defaults; only
// APIKey is required.
type Config struct {
	APIKey string

	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL string

	// RateLimit caps outbound requests per second. Notion allows an
	// average of 3 requests per second per integration.
	RateLimit float64

	// MaxRetries bounds retry attempts for transient failures (429,
	// 5xx, network errors).
	MaxRetries int

	// RetryDelay is the minimum backoff between retries.
	RetryDelay time.Duration

	Logger *slog.Logger
}

// Client talks to the Notion API. Construct it with New and pass it
// explicitly; it carries its own rate limiter and retry policy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a Client from cfg.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 3
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	// Bearer auth on every attempt, retries around it.
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.APIKey, TokenType: "Bearer"})

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = oauth2.NewClient(context.Background(), source)
	retryClient.RetryMax = cfg.MaxRetries
	retryClient.RetryWaitMin = cfg.RetryDelay
	retryClient.RetryWaitMax = cfg.RetryDelay * 8
	retryClient.Logger = nil
	retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			cfg.Logger.Debug("retrying notion request", "method", req.Method, "url", req.URL.Path, "attempt", attempt)
		}
	}

	return &Client{
		httpClient: retryClient.StandardClient(),
		baseURL:    cfg.BaseURL,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		logger:     cfg.Logger,
	}
}

// do issues one API call: waits for the rate limiter, sends the request
// (with retries underneath), and decodes the response into out when
// non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Notion-Version", notionVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notion request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// The body carries {"code": ..., "message": ...} on API errors;
		// keep the status even when it doesn't parse.
		_ = json.Unmarshal(data, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// QueryDatabase runs a database query, following pagination until all
// results are collected.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query DatabaseQuery) ([]Page, error) {
	id, err := NormalizeID(databaseID)
	if err != nil {
		return nil, err
	}

	var pages []Page
	for {
		var resp queryResponse
		if err := c.do(ctx, http.MethodPost, "/databases/"+id+"/query", query, &resp); err != nil {
			return nil, fmt.Errorf("query database %s: %w", id, err)
		}
		pages = append(pages, resp.Results...)

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		query.StartCursor = resp.NextCursor
	}

	c.logger.Debug("queried database", "database", id, "pages", len(pages))
	return pages, nil
}

// RetrieveDatabase fetches a database's metadata. Used by the environment
// checks to confirm the integration can see the database.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	id, err := NormalizeID(databaseID)
	if err != nil {
		return nil, err
	}

	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+id, nil, &db); err != nil {
		return nil, fmt.Errorf("retrieve database %s: %w", id, err)
	}
	return &db, nil
}

// Me fetches the integration's bot user, confirming the token works.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &user); err != nil {
		return nil, fmt.Errorf("retrieve bot user: %w", err)
	}
	return &user, nil
}

// createPageRequest is the body for page creation, covering both parent
// kinds: a page (planner pages) and a database (task records).
type createPageRequest struct {
	Parent     map[string]string        `json:"parent"`
	Properties map[string]PropertyValue `json:"properties"`
	Children   []Block                  `json:"children,omitempty"`
}

// CreatePage creates a page under a parent page with the given title and
// content blocks, returning the created page.
func (c *Client) CreatePage(ctx context.Context, parentPageID, title string, children []Block) (*Page, error) {
	id, err := NormalizeID(parentPageID)
	if err != nil {
		return nil, err
	}

	req := createPageRequest{
		Parent: map[string]string{"page_id": id},
		Properties: map[string]PropertyValue{
			"title": {Title: Text(title)},
		},
		Children: children,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	if page.URL == "" {
		page.URL = PageURL(page.ID)
	}

	c.logger.Info("created page", "page", page.ID, "title", title)
	return &page, nil
}

// CreateRecord creates a row in a database with the given properties,
// returning the created page.
func (c *Client) CreateRecord(ctx context.Context, databaseID string, properties map[string]PropertyValue) (*Page, error) {
	id, err := NormalizeID(databaseID)
	if err != nil {
		return nil, err
	}

	req := createPageRequest{
		Parent:     map[string]string{"database_id": id},
		Properties: properties,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", req, &page); err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}
	return &page, nil
}
