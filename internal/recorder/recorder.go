package recorder

import "time"

// Run statuses.
const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// RunEvent describes one spectrum computation. It carries counts and the
// resulting zone only; the computed series are never stored.
type RunEvent struct {
	Time       time.Time
	Symbol     string
	Source     string
	Trigger    string // "DAILY", "MANUAL" or "HTTP"
	Window     int
	Samples    int
	Defined    int
	Zone       string
	Status     string
	Error      string
	DurationMS int64
}

// Recorder persists the run log for later inspection.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	RecentRuns(limit int) ([]RunEvent, error)
	Close() error
}
