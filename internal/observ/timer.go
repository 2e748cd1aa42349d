package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase accumulates the time spent in one named phase. Phases that run once
// per file (parse, format, write) are summed across files.
type Phase struct {
	Name  string
	Count int
	Dur   time.Duration
	Note  string
}

// Timer tracks phase durations. It is safe for concurrent use.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
	index  map[string]int
	start  time.Time
}

// NewTimer creates a new empty Timer; wall time is measured from now.
func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 8), index: make(map[string]int), start: time.Now()}
}

// Begin starts a phase and returns a func that records its duration.
// A nil Timer returns a no-op.
func (t *Timer) Begin(name string) func() {
	if t == nil {
		return func() {}
	}
	start := time.Now()
	return func() { t.Add(name, time.Since(start)) }
}

// Add records d against the named phase.
func (t *Timer) Add(name string, d time.Duration) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	idx, ok := t.index[name]
	if !ok {
		idx = len(t.phases)
		t.phases = append(t.phases, Phase{Name: name})
		t.index[name] = idx
	}
	t.phases[idx].Count++
	t.phases[idx].Dur += d
}

// Note attaches a free-form note to a phase, creating it if needed.
func (t *Timer) Note(name, note string) {
	if t == nil {
		return
	}
	t.Add(name, 0)
	t.mu.Lock()
	defer t.mu.Unlock()
	p := &t.phases[t.index[name]]
	p.Count--
	p.Note = note
}

// Summary returns a human-readable string summarizing all tracked phases.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-12s %9.2f ms", p.Name, p.DurationMS)
		if p.Count > 1 {
			fmt.Fprintf(&b, "  (%d files)", p.Count)
		}
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-12s %9.2f ms\n", "wall", report.WallMS)
	return b.String()
}

// PhaseReport is the serializable form of a Phase.
type PhaseReport struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates timer data. Phase durations may exceed WallMS when
// files were processed in parallel.
type Report struct {
	WallMS float64       `json:"wall_ms"`
	Phases []PhaseReport `json:"phases"`
}

// Report snapshots the phases in first-seen order.
func (t *Timer) Report() Report {
	if t == nil {
		return Report{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	report := Report{
		WallMS: durationToMillis(time.Since(t.start)),
		Phases: make([]PhaseReport, len(t.phases)),
	}
	for i, phase := range t.phases {
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			Count:      phase.Count,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
