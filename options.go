package fontinfo

import "time"

// DefaultRetryDelay is how long the monitor waits before re-measuring
// degenerate entries.
const DefaultRetryDelay = 500 * time.Millisecond

// Option configures a Registry.
type Option func(*config)

// config holds Registry configuration.
type config struct {
	scheduler  Scheduler
	retryDelay time.Duration
	tolerance  float64
}

// defaultConfig returns the default Registry configuration.
func defaultConfig() config {
	return config{
		scheduler:  TimerScheduler{},
		retryDelay: DefaultRetryDelay,
		tolerance:  DefaultTolerance,
	}
}

// WithScheduler sets the scheduler used for monitor passes.
// A nil scheduler keeps the default TimerScheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithRetryDelay sets the delay between monitor passes.
// Non-positive values keep DefaultRetryDelay.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.retryDelay = d
		}
	}
}

// WithTolerance sets the monospace width tolerance in pixels.
// Negative values keep DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(c *config) {
		if tol >= 0 {
			c.tolerance = tol
		}
	}
}
