package fontinfo

import (
	"log/slog"
	"sync"
)

// Registry is the long-lived metrics service.
//
// It answers Read synchronously from a MetricsCache, measuring on the first
// request for a descriptor. Degenerate measurements are clamped, cached,
// and retried by a single deferred monitor pass that keeps rescheduling
// itself until every entry has stabilised. Subscribers registered with
// OnDidChange are told when a pass replaced clamped values.
//
// Construct one Registry at startup, share it, and Dispose it at shutdown.
// Registry is safe for concurrent use; all operations are serialised.
type Registry struct {
	mu sync.Mutex

	measurer TextMeasurer
	cfg      config

	cache *MetricsCache

	// clamped holds the IDs of entries whose cached value is a clamped
	// substitute rather than a trusted measurement.
	clamped map[string]struct{}

	// timer is the pending monitor pass, nil when none is armed. gen
	// identifies it so a pass that lost a race with Clear does nothing.
	timer    Timer
	gen      uint64
	disposed bool

	changed Emitter
}

// New creates a Registry that measures with m.
func New(m TextMeasurer, opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{
		measurer: m,
		cfg:      cfg,
		cache:    NewMetricsCache(),
		clamped:  make(map[string]struct{}),
	}
}

// Read returns the metrics for d.
//
// Read never blocks on the monitor. When the first measurement of d is
// degenerate the returned value is clamped to usable widths and a monitor
// pass is scheduled; the real metrics arrive later through OnDidChange.
func (r *Registry) Read(d Descriptor) Metrics {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.cache.Get(d); ok {
		return m
	}

	m := r.measure(d)
	if m.IsDegenerate() {
		Logger().Warn("fontinfo: degenerate measurement, font probably not loaded yet",
			slog.String("font", d.ID()),
			slog.Float64("halfwidth", m.TypicalHalfwidthCharacterWidth),
			slog.Float64("fullwidth", m.TypicalFullwidthCharacterWidth),
			slog.Float64("space", m.SpaceWidth),
			slog.Float64("maxDigit", m.MaxDigitWidth),
		)
		m = m.Clamp()
		r.clamped[d.ID()] = struct{}{}
		r.armLocked()
	}
	r.cache.Put(d, m)
	return m
}

// Has reports whether d has been measured.
func (r *Registry) Has(d Descriptor) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Has(d)
}

// Descriptors returns every cached descriptor in first-read order.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Keys()
}

// Pending returns the number of cached entries still holding clamped values.
func (r *Registry) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clamped)
}

// OnDidChange registers fn to be called after a monitor pass replaced at
// least one clamped entry, and after Clear. The returned function cancels
// the subscription.
func (r *Registry) OnDidChange(fn func()) (cancel func()) {
	return r.changed.Subscribe(fn)
}

// Clear drops every cached entry and any pending monitor pass, then
// notifies subscribers so derived layout is recomputed. Use it when the
// host knows fonts changed underneath (new fonts installed, zoom reset).
func (r *Registry) Clear() {
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		return
	}
	r.cancelLocked()
	r.cache.Clear()
	r.clamped = make(map[string]struct{})
	r.mu.Unlock()

	r.changed.Fire()
}

// Dispose cancels any pending monitor pass and releases all subscriptions.
// No subscriber is called once Dispose returns, except one that a running
// pass had already entered. It is safe to call more than once. Read keeps
// working after Dispose but degenerate entries are no longer retried.
func (r *Registry) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return
	}
	r.disposed = true
	r.cancelLocked()
	r.changed.Close()
}

func (r *Registry) measure(d Descriptor) Metrics {
	m := measure(d, r.measurer, r.cfg.tolerance)
	Logger().Debug("fontinfo: measured",
		slog.String("font", d.ID()),
		slog.Bool("monospace", m.IsMonospace),
		slog.Float64("halfwidth", m.TypicalHalfwidthCharacterWidth),
	)
	return m
}

// armLocked schedules a monitor pass unless one is already pending.
// Caller must hold r.mu.
func (r *Registry) armLocked() {
	if r.timer != nil || r.disposed {
		return
	}
	r.gen++
	gen := r.gen
	r.timer = r.cfg.scheduler.Schedule(r.cfg.retryDelay, func() { r.monitorPass(gen) })
}

// cancelLocked stops the pending monitor pass, if any.
// Caller must hold r.mu.
func (r *Registry) cancelLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// monitorPass re-measures every cached descriptor. Entries that are no
// longer degenerate replace the cached value; if any remain degenerate the
// pass reschedules itself. Subscribers are notified once per pass.
func (r *Registry) monitorPass(gen uint64) {
	r.mu.Lock()
	if r.disposed || r.timer == nil || gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.timer = nil

	var stillDegenerate, changed bool
	stabilised := 0
	for _, d := range r.cache.Keys() {
		m := r.measure(d)
		if m.needsRemeasure() {
			stillDegenerate = true
			continue
		}

		id := d.ID()
		old, _ := r.cache.Get(d)
		_, wasClamped := r.clamped[id]
		r.cache.Put(d, m)
		if wasClamped {
			delete(r.clamped, id)
			stabilised++
		}
		if wasClamped || old != m {
			changed = true
		}
	}
	if stillDegenerate {
		r.armLocked()
	}
	Logger().Debug("fontinfo: monitor pass",
		slog.Int("entries", r.cache.Len()),
		slog.Bool("rearmed", stillDegenerate),
		slog.Bool("changed", changed),
	)
	if stabilised > 0 {
		Logger().Info("fontinfo: font metrics stabilised", slog.Int("entries", stabilised))
	}
	r.mu.Unlock()

	if changed {
		r.changed.Fire()
	}
}
