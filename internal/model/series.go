package model

// Value is a float that may be absent. The zero Value is absent.
type Value struct {
	Float float64
	Valid bool
}

// Present wraps v as a defined Value.
func Present(v float64) Value { return Value{Float: v, Valid: true} }

// Absent returns the absence marker.
func Absent() Value { return Value{} }

// Series is an index-aligned sequence of optional values.
type Series []Value

// Defined counts the present entries.
func (s Series) Defined() int {
	n := 0
	for _, v := range s {
		if v.Valid {
			n++
		}
	}
	return n
}

// Floats builds a fully present Series, mostly useful in tests and fixtures.
func Floats(vals ...float64) Series {
	out := make(Series, len(vals))
	for i, v := range vals {
		out[i] = Present(v)
	}
	return out
}

// Bands holds the five derived lines of the spectrum, all of equal length.
type Bands struct {
	Optimistic  Series
	Resistance  Series
	Trend       Series
	Support     Series
	Pessimistic Series
}

// Len returns the common length of the bands.
func (b *Bands) Len() int { return len(b.Trend) }
