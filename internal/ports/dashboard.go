package ports

import (
	"context"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/domain"
)

// HealthPort answers liveness probes. An empty name means the whole service.
type HealthPort interface {
	Check(ctx context.Context, name string) (healthy bool, msg string)
}

// DashboardPort is what the HTTP layer drives: one operation per API route.
type DashboardPort interface {
	HealthPort
	PriceHistory(ctx context.Context, ticker string) ([]domain.PricePoint, error)
	SearchNews(ctx context.Context, ticker string) (*domain.NewsResult, error)
	Summarize(ctx context.Context, message string) (*domain.SummaryReply, error)
}
