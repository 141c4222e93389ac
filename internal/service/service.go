package service

import (
	"context"
	"errors"
	"log"
	"time"

	"FiveLine/internal/collector"
	"FiveLine/internal/model"
	"FiveLine/internal/recorder"
	"FiveLine/internal/strategy"
)

// Outcome is one finished computation. Signal is nil when the series is too
// short for a full window; the record is still complete in that case.
type Outcome struct {
	Result *collector.Result
	Signal *model.ZoneSignal
}

// Service runs the fetch-and-build pipeline and logs every run.
type Service struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
}

// New creates a Service.
func New(col *collector.Collector, rec recorder.Recorder) *Service {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Service{Collector: col, Recorder: rec}
}

// Compute fetches and builds the spectrum for req and records the run.
func (s *Service) Compute(ctx context.Context, req collector.Request, trigger model.TriggerType) (*Outcome, error) {
	started := time.Now()
	evt := &recorder.RunEvent{
		Time:    started,
		Symbol:  req.Symbol,
		Source:  s.Collector.Fetcher.Name(),
		Trigger: string(trigger),
		Window:  req.Window,
	}
	if evt.Symbol == "" {
		evt.Symbol = s.Collector.Symbol
	}
	if evt.Window == 0 {
		evt.Window = s.Collector.Window
	}

	res, err := s.Collector.CollectFor(ctx, req)
	if err != nil {
		evt.Status = recorder.StatusError
		evt.Error = err.Error()
		evt.DurationMS = time.Since(started).Milliseconds()
		s.record(evt)
		return nil, err
	}

	out := &Outcome{Result: res}
	sig, err := strategy.Evaluate(res.Series.Symbol, res.Spectrum)
	switch {
	case err == nil:
		sig.TriggerType = trigger
		out.Signal = sig
		evt.Zone = string(sig.Zone)
	case errors.Is(err, strategy.ErrNotEnoughHistory):
		log.Printf("[WARN] %s: %v", res.Series.Symbol, err)
	default:
		return nil, err
	}

	evt.Samples = len(res.Series.Samples)
	evt.Defined = res.Spectrum.Bands.Trend.Defined()
	evt.Status = recorder.StatusOK
	evt.DurationMS = time.Since(started).Milliseconds()
	s.record(evt)
	return out, nil
}

// RecentRuns proxies the run log.
func (s *Service) RecentRuns(limit int) ([]recorder.RunEvent, error) {
	return s.Recorder.RecentRuns(limit)
}

func (s *Service) record(evt *recorder.RunEvent) {
	if err := s.Recorder.RecordRun(evt); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
