package spectrum

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"FiveLine/internal/model"
)

// DisplayPlaces is the number of decimal places in rendered values.
const DisplayPlaces = 2

// FormatPresentation packages dates, closes and the five bands into a
// PresentationRecord. Every series must have len(dates) entries.
func FormatPresentation(dates []string, closePrices, trend, optimistic, resistance, support, pessimistic model.Series) (*model.PresentationRecord, error) {
	n := len(dates)
	named := []struct {
		name string
		s    model.Series
	}{
		{"close", closePrices},
		{"trend", trend},
		{"optimistic", optimistic},
		{"resistance", resistance},
		{"support", support},
		{"pessimistic", pessimistic},
	}
	for _, ns := range named {
		if len(ns.s) != n {
			return nil, fmt.Errorf("format %s: %d entries for %d dates: %w", ns.name, len(ns.s), n, ErrLengthMismatch)
		}
	}

	out := make([]string, n)
	copy(out, dates)
	return &model.PresentationRecord{
		Dates:       out,
		Close:       render(closePrices),
		Trend:       render(trend),
		Optimistic:  render(optimistic),
		Resistance:  render(resistance),
		Support:     render(support),
		Pessimistic: render(pessimistic),
	}, nil
}

func render(s model.Series) []*string {
	out := make([]*string, len(s))
	for i, v := range s {
		out[i] = FormatValue(v)
	}
	return out
}

// FormatValue renders v with DisplayPlaces decimals, or nil when v is absent.
// Non-finite floats have no decimal form and are treated as absent.
func FormatValue(v model.Value) *string {
	if !v.Valid || math.IsNaN(v.Float) || math.IsInf(v.Float, 0) {
		return nil
	}
	str := decimal.NewFromFloat(v.Float).StringFixed(DisplayPlaces)
	return &str
}
