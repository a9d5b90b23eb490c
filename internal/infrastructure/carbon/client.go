package carbon

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/timharek/wcarbon/internal/domain"
	"github.com/timharek/wcarbon/internal/ports"
	"github.com/timharek/wcarbon/internal/version"
)

// ErrIncompleteResponse is returned when a 2xx body lacks the estimate.
var ErrIncompleteResponse = errors.New("response is missing required fields")

// requiredFields must be present and non-null in every response body.
var requiredFields = []string{"cleanerThan", "statistics"}

// Client talks to the Website Carbon API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
	timeout    time.Duration
}

// NewClient builds a client for baseURL. An empty baseURL selects the public
// API. Every request is bounded by domain.DefaultHTTPClientTimeout, including
// requests sent through a caller-supplied httpClient.
func NewClient(baseURL string, httpClient *http.Client, logger ports.Logger) *Client {
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
		timeout:    domain.DefaultHTTPClientTimeout,
	}
}

// Site estimates emissions for the page at pageURL.
func (c *Client) Site(ctx context.Context, pageURL string) (domain.SiteResult, []byte, error) {
	params := url.Values{}
	params.Set("url", pageURL)

	var result domain.SiteResult
	raw, err := c.get(ctx, domain.SitePath, params, &result)
	if err != nil {
		return domain.SiteResult{}, nil, err
	}
	return result, raw, nil
}

// Data estimates emissions for a page of the given size.
func (c *Client) Data(ctx context.Context, size uint64, green bool) (domain.DataResult, []byte, error) {
	params := url.Values{}
	params.Set("bytes", strconv.FormatUint(size, 10))
	params.Set("green", domain.GreenFlag(green))

	var result domain.DataResult
	raw, err := c.get(ctx, domain.DataPath, params, &result)
	if err != nil {
		return domain.DataResult{}, nil, err
	}
	return result, raw, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + path + "?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", "wcarbon/"+version.Version)

	if c.logger != nil {
		c.logger.Debug("sending request", map[string]interface{}{"url": endpoint})
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s: %s", path, resp.Status)
	}

	var body bytes.Buffer
	if _, err := body.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}

	if err := checkRequired(body.Bytes()); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}
	if err := json.Unmarshal(body.Bytes(), out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	if c.logger != nil {
		c.logger.Debug("received response", map[string]interface{}{
			"path":   path,
			"status": resp.StatusCode,
			"bytes":  body.Len(),
		})
	}
	return body.Bytes(), nil
}

// checkRequired rejects bodies that are valid JSON but carry no estimate,
// such as null or {}.
func checkRequired(body []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return err
	}
	for _, name := range requiredFields {
		value, ok := fields[name]
		if !ok || string(bytes.TrimSpace(value)) == "null" {
			return fmt.Errorf("%w: %s", ErrIncompleteResponse, name)
		}
	}
	return nil
}

var _ ports.CarbonAPI = (*Client)(nil)
