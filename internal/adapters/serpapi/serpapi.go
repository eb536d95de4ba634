package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/domain"
)

const (
	DefaultBaseURL = "https://serpapi.com"
	newsEngine     = "google_news"
)

var ErrUpstreamStatus = errors.New("serpapi: unexpected status")

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

func (c *Client) Query(ctx context.Context, q string) ([]domain.NewsArticle, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := url.Values{}
	params.Set("engine", newsEngine)
	params.Set("q", q)
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search.json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the key is in the query string; keep it out of the error
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, fmt.Errorf("serpapi: search %q: %w", q, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: %d - %s", ErrUpstreamStatus, resp.StatusCode, string(body))
	}

	var raw searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("serpapi: decode: %w", err)
	}

	if raw.Error != "" {
		// e.g. "Google hasn't returned any results for this query."
		zerolog.Ctx(ctx).Warn().Str("query", q).Str("serpapi_error", raw.Error).Msg("search returned no news")
	}

	articles := make([]domain.NewsArticle, 0, len(raw.NewsResults))
	for _, item := range raw.NewsResults {
		articles = append(articles, domain.NewsArticle{
			Title:  item.Title,
			Source: item.Source,
			Link:   item.Link,
			Date:   item.Date,
		})
	}

	return articles, nil
}
