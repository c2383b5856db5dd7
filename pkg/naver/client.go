package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client represents a Naver book search API client
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a new Naver client with the given configuration
func NewClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
	}, nil
}

// Search performs a free-text book search with pagination.
// Zero display/start and an empty sort fall back to the API defaults
// (10, 1, relevance).
func (c *Client) Search(ctx context.Context, query string, display, start int, sort string) (*SearchResult, error) {
	if query == "" {
		return nil, ErrInvalidRequest
	}
	if display <= 0 {
		display = defaultDisplay
	}
	if start <= 0 {
		start = defaultStart
	}
	if sort != SortDate {
		sort = SortSim
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(display))
	params.Set("start", strconv.Itoa(start))
	params.Set("sort", sort)

	raw, err := c.doRequest(ctx, "book.json", params)
	if err != nil {
		return nil, err
	}

	return rawToResult(raw), nil
}

// SearchByISBN looks up a single book by exact ISBN through the
// advanced search endpoint. Returns ErrBookNotFound when the API has
// no match.
func (c *Client) SearchByISBN(ctx context.Context, isbn string) (*BookItem, error) {
	if isbn == "" {
		return nil, ErrInvalidRequest
	}

	params := url.Values{}
	params.Set("d_isbn", isbn)
	params.Set("display", "1")
	params.Set("start", "1")
	params.Set("sort", SortSim)

	raw, err := c.doRequest(ctx, "book_adv.json", params)
	if err != nil {
		return nil, err
	}

	if len(raw.Items) == 0 {
		return nil, ErrBookNotFound
	}

	item := raw.Items[0].normalize()
	return &item, nil
}

// doRequest performs an authenticated GET against the search API
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*searchResponse, error) {
	reqURL := fmt.Sprintf("%s/%s?%s", c.config.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Naver-Client-Id", c.config.ClientID)
	req.Header.Set("X-Naver-Client-Secret", c.config.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var raw searchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}

	return &raw, nil
}

func rawToResult(raw *searchResponse) *SearchResult {
	items := make([]BookItem, 0, len(raw.Items))
	for _, item := range raw.Items {
		items = append(items, item.normalize())
	}
	return &SearchResult{
		Total:   raw.Total,
		Start:   raw.Start,
		Display: raw.Display,
		Items:   items,
	}
}
