package strategy

import (
	"errors"
	"math"
	"testing"
	"time"

	"FiveLine/internal/model"
	"FiveLine/internal/spectrum"
)

func snapshot() spectrum.Snapshot {
	return spectrum.Snapshot{
		StdDev:      10,
		Optimistic:  120,
		Resistance:  110,
		Trend:       100,
		Support:     90,
		Pessimistic: 80,
	}
}

func TestClassify_AllZones(t *testing.T) {
	tests := []struct {
		close float64
		zone  model.Zone
	}{
		{150, model.ZoneAboveOptimistic},
		{120, model.ZoneAboveOptimistic},
		{115, model.ZoneOptimistic},
		{110, model.ZoneOptimistic},
		{105, model.ZoneResistance},
		{100, model.ZoneResistance},
		{95, model.ZoneSupport},
		{90, model.ZoneSupport},
		{85, model.ZonePessimistic},
		{80, model.ZonePessimistic},
		{79.99, model.ZoneBelowPessimistic},
		{0, model.ZoneBelowPessimistic},
	}
	for _, tt := range tests {
		if got := Classify(tt.close, snapshot()); got != tt.zone {
			t.Errorf("close %.2f: expected %s, got %s", tt.close, tt.zone, got)
		}
	}
}

func TestTiers_CoverEveryZone(t *testing.T) {
	zones := []model.Zone{
		model.ZoneAboveOptimistic, model.ZoneOptimistic, model.ZoneResistance,
		model.ZoneSupport, model.ZonePessimistic, model.ZoneBelowPessimistic,
	}
	for _, z := range zones {
		if Tiers[z].Label == "" {
			t.Errorf("zone %s has no tier", z)
		}
	}
}

func samples(closes ...float64) []model.Sample {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.Sample, len(closes))
	for i, c := range closes {
		out[i] = model.Sample{Time: start.AddDate(0, 0, i), Close: c, Valid: true}
	}
	return out
}

func TestEvaluate_SpikeAboveOptimistic(t *testing.T) {
	sp, err := spectrum.Build(samples(10, 10, 10, 10, 30), 5, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	sig, err := Evaluate("TEST", sp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// mean 14, population stddev 8, so the close sits exactly at +2 sigma
	if sig.Zone != model.ZoneAboveOptimistic {
		t.Errorf("expected %s, got %s", model.ZoneAboveOptimistic, sig.Zone)
	}
	if math.Abs(sig.Deviation-2) > 1e-9 {
		t.Errorf("expected deviation 2, got %g", sig.Deviation)
	}
	if sig.Tier.Label != Tiers[model.ZoneAboveOptimistic].Label {
		t.Errorf("unexpected tier %q", sig.Tier.Label)
	}
	if sig.Symbol != "TEST" || !sig.Date.Equal(sp.Samples[4].Time) {
		t.Errorf("unexpected signal header: %+v", sig)
	}
}

func TestEvaluate_FlatSeries(t *testing.T) {
	sp, _ := spectrum.Build(samples(5, 5, 5), 3, nil)
	sig, err := Evaluate("FLAT", sp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sig.Deviation != 0 {
		t.Errorf("expected zero deviation for a flat window, got %g", sig.Deviation)
	}
}

func TestEvaluate_NotEnoughHistory(t *testing.T) {
	sp, _ := spectrum.Build(samples(1, 2), 480, nil)
	if _, err := Evaluate("SHORT", sp); !errors.Is(err, ErrNotEnoughHistory) {
		t.Errorf("expected ErrNotEnoughHistory, got %v", err)
	}
}
