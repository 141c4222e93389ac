package model

import "time"

// Zone identifies which pair of spectrum lines the latest close sits between.
type Zone string

const (
	ZoneAboveOptimistic  Zone = "ABOVE_OPTIMISTIC"
	ZoneOptimistic       Zone = "OPTIMISTIC_RESISTANCE"
	ZoneResistance       Zone = "RESISTANCE_TREND"
	ZoneSupport          Zone = "TREND_SUPPORT"
	ZonePessimistic      Zone = "SUPPORT_PESSIMISTIC"
	ZoneBelowPessimistic Zone = "BELOW_PESSIMISTIC"
)

// TriggerType indicates what triggered a report.
type TriggerType string

const (
	TriggerDaily  TriggerType = "DAILY"
	TriggerManual TriggerType = "MANUAL"
	TriggerHTTP   TriggerType = "HTTP"
)

// ActionTier maps a zone to a suggested action.
type ActionTier struct {
	Label  string
	Advice string
}

// ZoneSignal is the final output of the zone evaluation.
type ZoneSignal struct {
	Symbol      string
	Date        time.Time
	Close       float64
	Optimistic  float64
	Resistance  float64
	Trend       float64
	Support     float64
	Pessimistic float64
	Zone        Zone
	Tier        ActionTier
	// Deviation is (close - trend) / stddev; 0 when stddev is 0.
	Deviation   float64
	TriggerType TriggerType
}
