package spectrum

import (
	"fmt"
	"time"

	"FiveLine/internal/calculator"
	"FiveLine/internal/model"
)

// DefaultWindow is two trading years of daily samples.
const DefaultWindow = 480

// DateLayout is how sample timestamps appear on the category axis.
const DateLayout = "2006-01-02"

// Spectrum is the result of one pipeline run over a single series.
type Spectrum struct {
	Window  int
	Samples []model.Sample
	Close   model.Series
	Mean    model.Series
	StdDev  model.Series
	Bands   *model.Bands
	Record  *model.PresentationRecord
}

// Snapshot is every line at one index where all of them are defined.
type Snapshot struct {
	Index       int
	Time        time.Time
	Close       float64
	StdDev      float64
	Optimistic  float64
	Resistance  float64
	Trend       float64
	Support     float64
	Pessimistic float64
}

// Build runs rolling statistics, band composition and formatting over samples.
// Dates are rendered in loc; a nil loc means UTC.
func Build(samples []model.Sample, window int, loc *time.Location) (*Spectrum, error) {
	if loc == nil {
		loc = time.UTC
	}
	closes := model.Closes(samples)

	mean, err := calculator.RollingMean(closes, window)
	if err != nil {
		return nil, fmt.Errorf("rolling mean: %w", err)
	}
	stddev, err := calculator.RollingStdDev(closes, window)
	if err != nil {
		return nil, fmt.Errorf("rolling stddev: %w", err)
	}
	bands, err := ComposeBands(mean, stddev)
	if err != nil {
		return nil, err
	}

	dates := make([]string, len(samples))
	for i, s := range samples {
		dates[i] = s.Time.In(loc).Format(DateLayout)
	}
	rec, err := FormatPresentation(dates, closes, bands.Trend, bands.Optimistic, bands.Resistance, bands.Support, bands.Pessimistic)
	if err != nil {
		return nil, err
	}

	return &Spectrum{
		Window:  window,
		Samples: samples,
		Close:   closes,
		Mean:    mean,
		StdDev:  stddev,
		Bands:   bands,
		Record:  rec,
	}, nil
}

// Latest returns the last index where the close, the deviation and all bands
// are defined.
func (sp *Spectrum) Latest() (Snapshot, bool) {
	for i := len(sp.Close) - 1; i >= 0; i-- {
		if !sp.definedAt(i) {
			continue
		}
		return Snapshot{
			Index:       i,
			Time:        sp.Samples[i].Time,
			Close:       sp.Close[i].Float,
			StdDev:      sp.StdDev[i].Float,
			Optimistic:  sp.Bands.Optimistic[i].Float,
			Resistance:  sp.Bands.Resistance[i].Float,
			Trend:       sp.Bands.Trend[i].Float,
			Support:     sp.Bands.Support[i].Float,
			Pessimistic: sp.Bands.Pessimistic[i].Float,
		}, true
	}
	return Snapshot{}, false
}

func (sp *Spectrum) definedAt(i int) bool {
	b := sp.Bands
	return sp.Close[i].Valid && sp.StdDev[i].Valid &&
		b.Optimistic[i].Valid && b.Resistance[i].Valid && b.Trend[i].Valid &&
		b.Support[i].Valid && b.Pessimistic[i].Valid
}
