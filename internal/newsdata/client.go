package newsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsdash/internal/model"
)

// Client is a minimal NewsData.io latest-news client.
// Docs: https://newsdata.io/documentation
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a NewsData client. baseURL defaults to the public API
// endpoint when empty.
func NewClient(baseURL, apiKey string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = "https://newsdata.io/api/1"
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Query narrows a latest-news request.
type Query struct {
	Q        string // search term, e.g. "football"
	Language string // e.g. "en"
	Country  string // e.g. "us"
	Category string // upstream category filter
}

// response mirrors the subset of the NewsData envelope we care about.
type response struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Results      []model.Article `json:"results"`
	NextPage     string          `json:"nextPage"`
}

// Latest fetches recent articles matching the query, following the nextPage
// cursor for up to maxPages pages (a maxPages of 0 or less means one page).
func (c *Client) Latest(ctx context.Context, q Query, maxPages int) ([]model.Article, error) {
	if maxPages <= 0 {
		maxPages = 1
	}
	var (
		articles []model.Article
		cursor   string
	)
	for page := 0; page < maxPages; page++ {
		res, err := c.fetchPage(ctx, q, cursor)
		if err != nil {
			return nil, err
		}
		articles = append(articles, res.Results...)
		if res.NextPage == "" {
			break
		}
		cursor = res.NextPage
	}
	slog.Info("newsdata: fetched articles", "query", q.Q, "count", len(articles))
	return articles, nil
}

func (c *Client) fetchPage(ctx context.Context, q Query, cursor string) (*response, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	if q.Q != "" {
		params.Set("q", q.Q)
	}
	if q.Language != "" {
		params.Set("language", q.Language)
	}
	if q.Country != "" {
		params.Set("country", q.Country)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if cursor != "" {
		params.Set("page", cursor)
	}
	endpoint := c.baseURL + "/news?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("newsdata: latest news status %d", resp.StatusCode)
	}
	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}
	if res.Status != "" && res.Status != "success" {
		return nil, fmt.Errorf("newsdata: unexpected status %q", res.Status)
	}
	return &res, nil
}
