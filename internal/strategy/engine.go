package strategy

import (
	"errors"

	"FiveLine/internal/model"
	"FiveLine/internal/spectrum"
)

// ErrNotEnoughHistory is returned when no index has a fully defined spectrum.
var ErrNotEnoughHistory = errors.New("not enough history for a full window")

// Tiers maps each zone to its suggested action, from most stretched to most
// depressed price.
var Tiers = map[model.Zone]model.ActionTier{
	model.ZoneAboveOptimistic:  {Label: "極度樂觀", Advice: "價格已超過樂觀線，分批獲利了結"},
	model.ZoneOptimistic:       {Label: "偏高", Advice: "介於壓力線與樂觀線，減碼或觀望"},
	model.ZoneResistance:       {Label: "略高", Advice: "介於趨勢線與壓力線，持有不追高"},
	model.ZoneSupport:          {Label: "略低", Advice: "介於支撐線與趨勢線，可分批布局"},
	model.ZonePessimistic:      {Label: "偏低", Advice: "介於悲觀線與支撐線，逢低加碼"},
	model.ZoneBelowPessimistic: {Label: "極度悲觀", Advice: "價格跌破悲觀線，積極分批買進"},
}

// Classify places price within the five lines of snap. A price sitting
// exactly on a line belongs to the zone above it.
func Classify(price float64, snap spectrum.Snapshot) model.Zone {
	switch {
	case price >= snap.Optimistic:
		return model.ZoneAboveOptimistic
	case price >= snap.Resistance:
		return model.ZoneOptimistic
	case price >= snap.Trend:
		return model.ZoneResistance
	case price >= snap.Support:
		return model.ZoneSupport
	case price >= snap.Pessimistic:
		return model.ZonePessimistic
	default:
		return model.ZoneBelowPessimistic
	}
}

// Evaluate classifies the latest fully defined point of sp.
func Evaluate(symbol string, sp *spectrum.Spectrum) (*model.ZoneSignal, error) {
	snap, ok := sp.Latest()
	if !ok {
		return nil, ErrNotEnoughHistory
	}
	zone := Classify(snap.Close, snap)

	var dev float64
	if snap.StdDev > 0 {
		dev = (snap.Close - snap.Trend) / snap.StdDev
	}

	return &model.ZoneSignal{
		Symbol:      symbol,
		Date:        snap.Time,
		Close:       snap.Close,
		Optimistic:  snap.Optimistic,
		Resistance:  snap.Resistance,
		Trend:       snap.Trend,
		Support:     snap.Support,
		Pessimistic: snap.Pessimistic,
		Zone:        zone,
		Tier:        Tiers[zone],
		Deviation:   dev,
		TriggerType: model.TriggerManual,
	}, nil
}
