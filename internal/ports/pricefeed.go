package ports

import "context"

type PriceFeed interface {
	// Returns the raw daily-interval CSV document for an upstream symbol (e.g. "aapl.us").
	FetchDaily(ctx context.Context, symbol string) (string, error)
}
