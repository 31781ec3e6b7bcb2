package fontinfo

import "time"

var testDescriptor = NewDescriptor("Mono", "normal", 14, 19)

// constMeasurer measures every character at the same width.
type constMeasurer float64

func (c constMeasurer) Measure(string, Style, Descriptor) float64 { return float64(c) }

// recordingScheduler records scheduled callbacks without running them.
type recordingScheduler struct {
	delays []time.Duration
	fns    []func()
}

type recordingTimer struct{ stopped bool }

func (t *recordingTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (s *recordingScheduler) Schedule(delay time.Duration, fn func()) Timer {
	s.delays = append(s.delays, delay)
	s.fns = append(s.fns, fn)
	return &recordingTimer{}
}
