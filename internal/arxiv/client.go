package arxiv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the search service queried when no override is
// configured.
const DefaultBaseURL = "https://arxiv-json-api.fly.dev"

const defaultSearchTimeout = 15 * time.Second

var idRegexp = regexp.MustCompile(`(?i)arxiv\.org/(?:abs|pdf)/([0-9a-z.\-]+)(?:\.pdf)?`)

// Client issues search requests against the remote listing service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the given base URL. A nil httpClient gets a
// default with a request timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultSearchTimeout}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// Search fetches one page of results. The whole page is replaced on every
// call; there is no merging and no retry. Any transport, status, or decode
// failure is returned to the caller and treated as fatal there.
func (c *Client) Search(ctx context.Context, params Params) ([]Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}
	values := url.Values{}
	values.Set("q", params.Query)
	values.Set("p", strconv.Itoa(params.Page))
	req.URL.RawQuery = values.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("search service error: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}

	var results []Result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return results, nil
}

// extractIdentifier pulls the bare arXiv identifier out of an abs or pdf URL.
// It returns "" when the input does not look like an arXiv link.
func extractIdentifier(input string) string {
	input = strings.TrimSpace(input)
	// Strip the suffix first; the identifier class includes '.' and would
	// otherwise swallow it.
	if len(input) > 4 && strings.EqualFold(input[len(input)-4:], ".pdf") {
		input = input[:len(input)-4]
	}
	if matches := idRegexp.FindStringSubmatch(input); len(matches) > 1 {
		return matches[1]
	}
	return ""
}
