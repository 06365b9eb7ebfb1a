package planapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// Client is the HTTP wrapper for the upstream plan REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new plan API client. When accessToken is non-empty the
// underlying transport injects it as a Bearer token on every request.
func NewClient(baseURL, accessToken string) *Client {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	if accessToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		httpClient = oauth2.NewClient(
			context.WithValue(context.Background(), oauth2.HTTPClient, httpClient),
			src,
		)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// get performs GET on path with query values, decoding the JSON body into out.
// bustCache appends the t=<unix-millis> query parameter the upstream uses to
// defeat intermediary caching.
func (c *Client) get(ctx context.Context, path string, query url.Values, bustCache bool, out any) error {
	if query == nil {
		query = url.Values{}
	}
	if bustCache {
		query.Set("t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	}

	u := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build GET %s request: %w", path, err)
	}

	return c.do(req, out)
}

// send performs a JSON-body request (POST/PUT/PATCH/DELETE) and decodes the
// response into out when out is non-nil.
func (c *Client) send(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call plan API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Path:       req.URL.Path,
			Body:       string(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode plan API response: %w", err)
	}
	return nil
}

// APIError is a non-2xx upstream response.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("plan API error %d on %s: %s", e.StatusCode, e.Path, e.Body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}
