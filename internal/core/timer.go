package core

import "time"

// Stopwatch measures named pipeline stages in the order they run.
type Stopwatch struct {
	now    func() time.Time
	start  time.Time
	stages []StageTiming
}

// StageTiming records how long one stage took.
type StageTiming struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration_ns"`
}

// NewStopwatch returns a stopwatch using the wall clock.
func NewStopwatch() *Stopwatch {
	return &Stopwatch{now: time.Now}
}

// Start marks the beginning of a stage.
func (s *Stopwatch) Start() {
	s.start = s.now()
}

// Lap closes the current stage under name and returns its duration. The next
// stage starts immediately.
func (s *Stopwatch) Lap(name string) time.Duration {
	now := s.now()
	if s.start.IsZero() {
		s.start = now
	}
	d := now.Sub(s.start)
	s.stages = append(s.stages, StageTiming{Name: name, Duration: d})
	s.start = now
	return d
}

// Stages returns the recorded stage timings.
func (s *Stopwatch) Stages() []StageTiming {
	out := make([]StageTiming, len(s.stages))
	copy(out, s.stages)
	return out
}

// Total sums every recorded stage.
func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, st := range s.stages {
		total += st.Duration
	}
	return total
}
