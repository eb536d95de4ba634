package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/cp25sy5-modjot/market-proxy-service/internal/domain"
	"github.com/cp25sy5-modjot/market-proxy-service/internal/ports"
)

const (
	// US listings on stooq are addressed as <ticker>.us
	MarketSuffix = ".us"

	MaxNewsResults = 10

	SummarySystemPrompt = "You are a stock headline summarising asistant. Summarise the news headlines given in 2-3 sentances. Dive right into the responce, don't say what your going to do."
)

var _ ports.DashboardPort = (*DashboardService)(nil)

type DashboardService struct {
	prices     ports.PriceFeed
	parser     ports.PriceParser
	news       ports.NewsSearch
	summarizer ports.Summarizer
}

func NewDashboardService(prices ports.PriceFeed, parser ports.PriceParser, news ports.NewsSearch, summarizer ports.Summarizer) *DashboardService {
	return &DashboardService{
		prices:     prices,
		parser:     parser,
		news:       news,
		summarizer: summarizer,
	}
}

func (s *DashboardService) Check(ctx context.Context, name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "market-proxy"
	}
	return true, "OK: " + name
}

// UpstreamSymbol maps a ticker to the price feed's symbol: "AAPL" -> "aapl.us".
func UpstreamSymbol(ticker string) string {
	return strings.ToLower(ticker) + MarketSuffix
}

// NewsQuery is the search text sent for a ticker, which is used as given.
func NewsQuery(ticker string) string {
	return ticker + " stock news"
}

func (s *DashboardService) PriceHistory(ctx context.Context, ticker string) ([]domain.PricePoint, error) {
	csv, err := s.prices.FetchDaily(ctx, UpstreamSymbol(ticker))
	if err != nil {
		return nil, fmt.Errorf("price history for %s: %w", ticker, err)
	}
	return s.parser.Parse(csv), nil
}

func (s *DashboardService) SearchNews(ctx context.Context, ticker string) (*domain.NewsResult, error) {
	articles, err := s.news.Query(ctx, NewsQuery(ticker))
	if err != nil {
		return nil, fmt.Errorf("news for %s: %w", ticker, err)
	}

	if len(articles) > MaxNewsResults {
		articles = articles[:MaxNewsResults]
	}
	results := make([]domain.NewsArticle, len(articles))
	copy(results, articles)

	return &domain.NewsResult{
		Stock:   ticker,
		Results: results,
	}, nil
}

func (s *DashboardService) Summarize(ctx context.Context, message string) (*domain.SummaryReply, error) {
	text, err := s.summarizer.Complete(ctx, SummarySystemPrompt, message)
	if err != nil {
		return nil, fmt.Errorf("summarize via %s: %w", s.summarizer.Name(), err)
	}
	return &domain.SummaryReply{Reply: text}, nil
}
