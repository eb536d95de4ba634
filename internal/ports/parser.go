package ports

import "github.com/cp25sy5-modjot/market-proxy-service/internal/domain"

type PriceParser interface {
	// Parse a daily CSV document into price points, in row order. Never fails:
	// malformed rows map to empty dates and NaN closes.
	Parse(csv string) []domain.PricePoint
}
