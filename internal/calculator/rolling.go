package calculator

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"FiveLine/internal/model"
)

// ErrInvalidWindow is returned when the window size is not positive.
var ErrInvalidWindow = errors.New("window must be positive")

// RollingMean computes the trailing arithmetic mean over window samples.
// An index is defined only when the full window ending there is present.
func RollingMean(series model.Series, window int) (model.Series, error) {
	return rolling(series, window, windowMean)
}

// RollingStdDev computes the trailing population standard deviation (divide by
// window, not window-1) under the same windowing rule as RollingMean.
func RollingStdDev(series model.Series, window int) (model.Series, error) {
	return rolling(series, window, windowPopStdDev)
}

func windowMean(w []float64) float64 {
	return stat.Mean(w, nil)
}

// windowPopStdDev derives the window's own mean and averages the squared
// deviations around it.
func windowPopStdDev(w []float64) float64 {
	_, variance := stat.PopMeanVariance(w, nil)
	// Rounding can leave a constant window at -1e-18.
	return math.Sqrt(math.Max(variance, 0))
}

// rolling applies fn to every complete, fully present window of the series.
func rolling(series model.Series, window int, fn func([]float64) float64) (model.Series, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	out := make(model.Series, len(series))
	if window > len(series) {
		return out, nil
	}

	buf := make([]float64, window)
	lastAbsent := -1
	for i, v := range series {
		if !v.Valid {
			lastAbsent = i
		}
		start := i - window + 1
		if start < 0 || lastAbsent >= start {
			continue
		}
		for j := range buf {
			buf[j] = series[start+j].Float
		}
		out[i] = model.Present(fn(buf))
	}
	return out, nil
}
