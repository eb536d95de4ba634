package stooq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const DefaultBaseURL = "https://stooq.com"

var ErrUpstreamStatus = errors.New("stooq: unexpected status")

type Feed struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// NewFeed builds a daily price feed client. A zero timeout leaves the call
// bounded only by the request context.
func NewFeed(baseURL string, timeout time.Duration) *Feed {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Feed{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		timeout:    timeout,
	}
}

// DailyURL is the CSV download address for a symbol at daily interval.
func (f *Feed) DailyURL(symbol string) string {
	return fmt.Sprintf("%s/q/d/l/?s=%s&i=d", f.baseURL, url.QueryEscape(symbol))
}

func (f *Feed) FetchDaily(ctx context.Context, symbol string) (string, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	u := f.DailyURL(symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("stooq: build request: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("url", u).Msg("fetching daily prices")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stooq: fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: %d - %s", ErrUpstreamStatus, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("stooq: read body: %w", err)
	}
	return string(body), nil
}
