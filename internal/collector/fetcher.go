package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"FiveLine/internal/model"
)

// ErrNoData is returned when a source has no closes for the requested symbol.
var ErrNoData = errors.New("no price data returned")

// Fetcher defines the interface for fetching daily closes.
// Samples are returned in chronological order; a missing close is a sample
// with Valid=false, never a zero price.
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.Sample, error)
	Name() string
}

// NewFetcher builds the fetcher for a provider name ("yahoo", "rest", "alpaca").
func NewFetcher(provider, baseURL, apiKey, apiSecret, proxyURL string) (Fetcher, error) {
	switch provider {
	case "", "yahoo":
		return NewYahooFetcher(proxyURL), nil
	case "rest":
		if baseURL == "" {
			return nil, errors.New("rest provider needs a base url")
		}
		return NewRESTFetcher(baseURL, apiKey, proxyURL), nil
	case "alpaca":
		return NewAlpacaFetcher(apiKey, apiSecret), nil
	case "mock":
		return &MockFetcher{Price: 100}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
