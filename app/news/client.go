package news

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

var _ Fetcher = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	parser     *Parser
	dates      *DateFormatter
	feedURL    string
	timeout    time.Duration
	maxItems   int
	userAgent  string
}

func NewClient(httpClient *http.Client, feedURL string, timeout time.Duration, maxItems int, locale, userAgent string) *Client {
	return &Client{
		httpClient: httpClient,
		parser:     NewParser(),
		dates:      NewDateFormatter(locale),
		feedURL:    feedURL,
		timeout:    timeout,
		maxItems:   maxItems,
		userAgent:  userAgent,
	}
}

// Fetch downloads and parses the feed on every call. Any failure is logged
// and results in an empty list.
func (c *Client) Fetch(ctx context.Context) []Item {
	items := []Item{}

	if c.feedURL == "" || c.maxItems == 0 {
		return items
	}

	data, err := c.fetchFeed(ctx)
	if err != nil {
		slog.Warn("News feed unavailable", "url", c.feedURL, "error", err)
		return items
	}

	parsed, err := c.parser.Run(data)
	if err != nil {
		slog.Warn("News feed unreadable", "url", c.feedURL, "error", err)
		return items
	}

	for _, item := range parsed {
		if len(items) == c.maxItems {
			break
		}
		item.PublishedISO = c.dates.ISO(item.PublishedAt)
		item.PublishedDisplay = c.dates.Display(item.PublishedAt)
		items = append(items, item)
	}

	slog.Debug("News feed fetched", "url", c.feedURL, "total", len(parsed), "kept", len(items))

	return items
}

func (c *Client) fetchFeed(ctx context.Context) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
