package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"FiveLine/internal/model"
)

// barsClient is the slice of the Alpaca market-data client we use.
type barsClient interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaFetcher implements Fetcher using Alpaca daily bars (IEX feed).
type AlpacaFetcher struct {
	Client barsClient
}

// NewAlpacaFetcher creates a fetcher backed by the Alpaca market-data API.
func NewAlpacaFetcher(apiKey, apiSecret string) *AlpacaFetcher {
	return &AlpacaFetcher{
		Client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
	}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

// FetchDailyCloses returns one sample per bar. Alpaca only emits bars for
// trading days, so every sample is present.
func (f *AlpacaFetcher) FetchDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]model.Sample, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bars, err := f.Client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame: marketdata.OneDay,
		Start:     start,
		End:       end,
		Feed:      marketdata.IEX,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("alpaca %s: %w", symbol, ErrNoData)
	}
	samples := make([]model.Sample, 0, len(bars))
	for _, b := range bars {
		samples = append(samples, model.Sample{
			Time:  b.Timestamp,
			Close: b.Close,
			Valid: isFinite(b.Close),
		})
	}
	return samples, nil
}
