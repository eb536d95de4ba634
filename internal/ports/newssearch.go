package ports

import (
	"context"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/domain"
)

type NewsSearch interface {
	// Runs a free-text news query; articles come back in provider order.
	Query(ctx context.Context, q string) ([]domain.NewsArticle, error)
}
