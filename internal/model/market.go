package model

import (
	"math"
	"time"
)

// Sample is one daily close. Valid is false when the source reported no close
// for that day (holidays, suspensions); Close is meaningless in that case.
type Sample struct {
	Time  time.Time
	Close float64
	Valid bool
}

// PriceSeries holds the raw samples fetched for one symbol.
type PriceSeries struct {
	Symbol    string
	Source    string
	Samples   []Sample
	FetchedAt time.Time
}

// Closes converts samples into a Series, keeping each sample's own presence.
// A non-finite close is absent even when the sample claims to be valid.
func Closes(samples []Sample) Series {
	out := make(Series, len(samples))
	for i, s := range samples {
		if s.Valid && !math.IsNaN(s.Close) && !math.IsInf(s.Close, 0) {
			out[i] = Present(s.Close)
		}
	}
	return out
}
