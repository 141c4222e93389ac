package spectrum

import (
	"errors"
	"fmt"

	"FiveLine/internal/model"
)

// ErrLengthMismatch is returned when parallel sequences differ in length.
var ErrLengthMismatch = errors.New("sequence lengths differ")

// Band multipliers applied to the rolling standard deviation.
const (
	optimisticK  = 2.0
	resistanceK  = 1.0
	supportK     = -1.0
	pessimisticK = -2.0
)

// ComposeBands derives the five spectrum lines from aligned mean and stddev
// series. An index where either input is absent is absent in every band.
func ComposeBands(mean, stddev model.Series) (*model.Bands, error) {
	if len(mean) != len(stddev) {
		return nil, fmt.Errorf("compose bands: mean %d vs stddev %d: %w", len(mean), len(stddev), ErrLengthMismatch)
	}
	n := len(mean)
	b := &model.Bands{
		Optimistic:  make(model.Series, n),
		Resistance:  make(model.Series, n),
		Trend:       make(model.Series, n),
		Support:     make(model.Series, n),
		Pessimistic: make(model.Series, n),
	}
	for i := 0; i < n; i++ {
		if !mean[i].Valid || !stddev[i].Valid {
			continue
		}
		m, s := mean[i].Float, stddev[i].Float
		b.Trend[i] = model.Present(m)
		b.Resistance[i] = model.Present(m + resistanceK*s)
		b.Optimistic[i] = model.Present(m + optimisticK*s)
		b.Support[i] = model.Present(m + supportK*s)
		b.Pessimistic[i] = model.Present(m + pessimisticK*s)
	}
	return b, nil
}
