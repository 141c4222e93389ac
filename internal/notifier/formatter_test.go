package notifier

import (
	"strings"
	"testing"
	"time"

	"FiveLine/internal/model"
	"FiveLine/internal/recorder"
)

func TestFormatSpectrumReport_MarksCloseBetweenLines(t *testing.T) {
	sig := &model.ZoneSignal{
		Symbol:      "2330",
		Date:        time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		Close:       95,
		Optimistic:  120,
		Resistance:  110,
		Trend:       100,
		Support:     90,
		Pessimistic: 80,
		Zone:        model.ZoneSupport,
		Tier:        model.ActionTier{Label: "略低", Advice: "可分批布局"},
		Deviation:   -0.5,
	}
	msg := FormatSpectrumReport(sig)

	if !strings.Contains(msg, "2330 樂活五線譜") || !strings.Contains(msg, "2025-06-30") {
		t.Errorf("missing header: %s", msg)
	}
	trend := strings.Index(msg, "趨勢線")
	closeAt := strings.Index(msg, "收盤價")
	support := strings.Index(msg, "支撐線")
	if !(trend < closeAt && closeAt < support) {
		t.Errorf("close should be listed between trend and support:\n%s", msg)
	}
	if !strings.Contains(msg, "-0.50σ") {
		t.Errorf("missing deviation: %s", msg)
	}
}

func TestFormatSpectrumReport_BelowAllLines(t *testing.T) {
	sig := &model.ZoneSignal{Symbol: "X", Close: 1, Optimistic: 5, Resistance: 4, Trend: 3, Support: 2, Pessimistic: 1.5}
	msg := FormatSpectrumReport(sig)
	if strings.Index(msg, "收盤價") < strings.Index(msg, "悲觀線") {
		t.Errorf("close should be listed last:\n%s", msg)
	}
}

func TestFormatRunHistory(t *testing.T) {
	if got := FormatRunHistory(nil); got != "尚無計算紀錄" {
		t.Errorf("unexpected empty history: %q", got)
	}
	msg := FormatRunHistory([]recorder.RunEvent{
		{Time: time.Now(), Symbol: "0050", Trigger: "DAILY", Samples: 1200, Defined: 700, Zone: "RESISTANCE_TREND", Status: recorder.StatusOK},
		{Time: time.Now(), Symbol: "<b>", Trigger: "MANUAL", Status: recorder.StatusError, Error: "no price data returned"},
	})
	if !strings.Contains(msg, "700/1200 RESISTANCE_TREND") {
		t.Errorf("missing ok run: %s", msg)
	}
	if !strings.Contains(msg, "&lt;b&gt;") || !strings.Contains(msg, "no price data returned") {
		t.Errorf("expected escaped symbol and error: %s", msg)
	}
}
