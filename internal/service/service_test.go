package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"FiveLine/internal/collector"
	"FiveLine/internal/model"
	"FiveLine/internal/recorder"
)

type memRecorder struct {
	mu   sync.Mutex
	runs []recorder.RunEvent
}

func (m *memRecorder) RecordRun(evt *recorder.RunEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, *evt)
	return nil
}

func (m *memRecorder) RecentRuns(limit int) ([]recorder.RunEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs, nil
}

func (m *memRecorder) Close() error { return nil }

func newCollector(f collector.Fetcher, window int) *collector.Collector {
	c := collector.NewCollector(f, "0050", 3, window, time.UTC)
	c.Now = func() time.Time { return time.Date(2025, 6, 30, 8, 0, 0, 0, time.UTC) }
	return c
}

func TestCompute_RecordsSuccessfulRun(t *testing.T) {
	rec := &memRecorder{}
	svc := New(newCollector(&collector.MockFetcher{Price: 150}, 480), rec)

	out, err := svc.Compute(context.Background(), collector.Request{}, model.TriggerDaily)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Signal == nil {
		t.Fatal("expected a zone signal")
	}
	if out.Signal.TriggerType != model.TriggerDaily {
		t.Errorf("expected DAILY trigger, got %s", out.Signal.TriggerType)
	}
	if len(rec.runs) != 1 {
		t.Fatalf("expected 1 recorded run, got %d", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Status != recorder.StatusOK || run.Symbol != "0050" || run.Window != 480 || run.Source != "mock" {
		t.Errorf("unexpected run: %+v", run)
	}
	if run.Defined == 0 || run.Defined >= run.Samples || run.Zone == "" {
		t.Errorf("unexpected counts: %+v", run)
	}
}

func TestCompute_ShortSeriesStillReturnsRecord(t *testing.T) {
	rec := &memRecorder{}
	samples := []model.Sample{{Time: time.Now(), Close: 10, Valid: true}}
	svc := New(newCollector(&collector.MockFetcher{Samples: samples}, 480), rec)

	out, err := svc.Compute(context.Background(), collector.Request{Symbol: "NEW"}, model.TriggerHTTP)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Signal != nil {
		t.Errorf("expected no signal, got %+v", out.Signal)
	}
	if out.Result.Spectrum.Record.Len() != 1 {
		t.Errorf("expected a one-point record")
	}
	if rec.runs[0].Status != recorder.StatusOK || rec.runs[0].Zone != "" {
		t.Errorf("unexpected run: %+v", rec.runs[0])
	}
}

func TestCompute_RecordsFailure(t *testing.T) {
	rec := &memRecorder{}
	svc := New(newCollector(&collector.MockFetcher{Err: collector.ErrNoData}, 480), rec)

	_, err := svc.Compute(context.Background(), collector.Request{Symbol: "GONE"}, model.TriggerManual)
	if !errors.Is(err, collector.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if len(rec.runs) != 1 || rec.runs[0].Status != recorder.StatusError || rec.runs[0].Symbol != "GONE" {
		t.Errorf("unexpected runs: %+v", rec.runs)
	}
}
