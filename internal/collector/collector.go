package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"FiveLine/internal/model"
	"FiveLine/internal/spectrum"
)

// historyPaddingYears is fetched on top of the requested span so the
// two-year trend window is already filled where the visible range starts.
const historyPaddingYears = 2

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price   float64
	Samples []model.Sample
	Err     error

	// LastStart and LastEnd record the most recent requested range.
	LastStart, LastEnd time.Time
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, _ string, start, end time.Time) ([]model.Sample, error) {
	m.LastStart, m.LastEnd = start, end
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Samples != nil {
		return m.Samples, nil
	}
	return generateMockSamples(m.Price, start, end), nil
}

func generateMockSamples(basePrice float64, start, end time.Time) []model.Sample {
	var samples []model.Sample
	i := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		samples = append(samples, model.Sample{
			Time:  d,
			Close: basePrice * (1 + float64(i%40-20)*0.002),
			Valid: true,
		})
		i++
	}
	return samples
}

// Request describes one spectrum computation. Zero fields fall back to the
// collector defaults.
type Request struct {
	Symbol string
	Years  int
	Window int
}

// Result pairs the fetched series with its computed spectrum.
type Result struct {
	Series   *model.PriceSeries
	Spectrum *spectrum.Spectrum
}

// Collector orchestrates data fetching and spectrum computation.
type Collector struct {
	Fetcher  Fetcher
	Symbol   string
	Years    int
	Window   int
	Location *time.Location
	Now      func() time.Time
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol string, years, window int, loc *time.Location) *Collector {
	return &Collector{
		Fetcher:  fetcher,
		Symbol:   symbol,
		Years:    years,
		Window:   window,
		Location: loc,
		Now:      time.Now,
	}
}

// Collect fetches the configured symbol and builds its spectrum.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	return c.CollectFor(ctx, Request{})
}

// CollectFor fetches closes for req and builds the spectrum.
func (c *Collector) CollectFor(ctx context.Context, req Request) (*Result, error) {
	if req.Symbol == "" {
		req.Symbol = c.Symbol
	}
	if req.Years <= 0 {
		req.Years = c.Years
	}
	if req.Window == 0 {
		req.Window = c.Window
	}

	end := c.Now()
	start := end.AddDate(-(req.Years + historyPaddingYears), 0, 0)
	samples, err := c.Fetcher.FetchDailyCloses(ctx, req.Symbol, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch %s from %s: %w", req.Symbol, c.Fetcher.Name(), err)
	}

	sp, err := spectrum.Build(samples, req.Window, c.Location)
	if err != nil {
		return nil, fmt.Errorf("build spectrum for %s: %w", req.Symbol, err)
	}
	if sp.Bands.Trend.Defined() == 0 {
		log.Printf("[WARN] %s: %d samples do not fill a %d-sample window", req.Symbol, len(samples), req.Window)
	}

	return &Result{
		Series: &model.PriceSeries{
			Symbol:    req.Symbol,
			Source:    c.Fetcher.Name(),
			Samples:   samples,
			FetchedAt: end,
		},
		Spectrum: sp,
	}, nil
}
