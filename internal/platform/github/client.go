package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/ghlabels/internal/metrics"
)

const (
	// DefaultEndpoint is the public GitHub API.
	DefaultEndpoint = "https://api.github.com"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "ghlabels"
	mediaType        = "application/vnd.github.v3+json"
	enterprisePrefix = "/api/v3"
	pageSize         = "100"
)

// Client talks to the GitHub REST API on behalf of one token.
// It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	token      string
	userAgent  string
	httpClient *http.Client
	timeout    *time.Duration
}

// NewClient creates a client for the given endpoint and token.
func NewClient(endpoint, token string, opts ...Option) (*Client, error) {
	base, err := BaseURL(endpoint)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    base,
		token:      token,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	// The timeout goes on a copy so a caller's client is never changed.
	if c.timeout != nil && c.httpClient.Timeout != *c.timeout {
		hc := *c.httpClient
		hc.Timeout = *c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// BaseURL resolves the API root for an endpoint.
func BaseURL(endpoint string) (*url.URL, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: missing host", endpoint)
	}

	u.Path = strings.TrimSuffix(u.Path, "/")
	if u.Path == "" && u.Hostname() != "api.github.com" {
		u.Path = enterprisePrefix
	}
	return u, nil
}

// endpoint builds an absolute URL below the API root. Segments are escaped
// when the URL is rendered.
func (c *Client) endpoint(segments ...string) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.Join(segments, "/")
	u.RawPath = ""
	return u.String()
}

// withPageSize adds the per_page query parameter to an absolute URL.
func withPageSize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set("per_page", pageSize)
	u.RawQuery = q.Encode()
	return u.String()
}

// do performs a single request against an absolute URL and decodes the
// JSON response into result when result is non-nil.
func (c *Client) do(ctx context.Context, operation, method, target string, body, result any) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordAPICall(operation, err, time.Since(start))
	}()

	logr.FromContextOrDiscard(ctx).V(1).Info("api request", "method", method, "url", target)

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return unknownError(target, fmt.Errorf("failed to marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return unknownError(target, fmt.Errorf("failed to create request: %w", err))
	}

	req.Header.Set("Accept", mediaType)
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "token "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return unknownError(target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return handleErrorResponse(resp, target)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return unknownError(target, fmt.Errorf("failed to decode response: %w", err))
		}
	}
	return nil
}
