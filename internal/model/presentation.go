package model

// PresentationRecord is the chart-ready output: seven parallel sequences keyed
// by Dates. A nil entry marks an absent value and encodes as JSON null.
type PresentationRecord struct {
	Dates       []string  `json:"dates"`
	Close       []*string `json:"close"`
	Trend       []*string `json:"trend"`
	Optimistic  []*string `json:"optimistic"`
	Resistance  []*string `json:"resistance"`
	Support     []*string `json:"support"`
	Pessimistic []*string `json:"pessimistic"`
}

// Len returns the number of points on the category axis.
func (r *PresentationRecord) Len() int { return len(r.Dates) }
