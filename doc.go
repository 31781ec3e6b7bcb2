// Package fontinfo measures and caches the rendered metrics of fonts.
//
// # Overview
//
// Declared font properties (family, size, weight) do not reliably predict
// how wide glyphs actually render. fontinfo measures a fixed probe set
// through a host-supplied TextMeasurer and caches the result per
// Descriptor, so that fixed-width text columns can be laid out correctly.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/fontinfo"
//	    "github.com/gogpu/fontinfo/library"
//	    "github.com/gogpu/fontinfo/measure/ximage"
//	)
//
//	lib := library.New()
//	_ = lib.RegisterGoFonts()
//
//	reg := fontinfo.New(ximage.New(lib))
//	defer reg.Dispose()
//
//	m := reg.Read(fontinfo.NewDescriptor("Go Mono", "normal", 14, 19))
//	fmt.Println(m.IsMonospace, m.TypicalHalfwidthCharacterWidth)
//
// # Self-healing measurements
//
// A measurement taken before a font has finished loading comes back with
// near-zero widths. Registry.Read detects this, returns widths clamped to
// at least 5 px so layout can proceed, and schedules a monitor pass. The
// pass re-measures every cached descriptor every 500 ms until the widths
// are sane, then fires the OnDidChange event once so consumers recompute
// their layout. There is no retry limit.
//
// # Architecture
//
//   - Descriptor, Metrics: value types; Descriptor.ID is the cache key
//   - Measure: the measurement and monospace detection algorithm
//   - MetricsCache: insertion-ordered, never-evicting descriptor map
//   - Registry: cache, monitor and change event behind one mutex
//   - Scheduler: deferred callbacks; fontinfotest.ManualScheduler for tests
//
// Measurement backends live in measure/ (x/image, go-text, freetype,
// tdewolff/canvas) and resolve families through library.Library.
package fontinfo
