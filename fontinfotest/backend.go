package fontinfotest

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/library"
)

// NewMeasurerFunc builds the measurer under test on top of lib.
type NewMeasurerFunc func(lib *library.Library) fontinfo.TextMeasurer

// TestMeasurer checks the behaviour every font-backed measurer must share:
// Go Mono measures as monospace, Go Regular does not, and a family that is
// registered late is picked up by the next monitor pass.
func TestMeasurer(t *testing.T, newMeasurer NewMeasurerFunc) {
	t.Helper()

	t.Run("Monospace", func(t *testing.T) {
		lib := library.New()
		if _, err := lib.Register("Go Mono", library.Regular, gomono.TTF); err != nil {
			t.Fatalf("Register: %v", err)
		}
		got := fontinfo.Measure(fontinfo.NewDescriptor("Go Mono", "normal", 14, 19), newMeasurer(lib))
		if !got.IsMonospace {
			t.Errorf("Go Mono IsMonospace = false, metrics %+v", got)
		}
		if got.IsDegenerate() {
			t.Errorf("Go Mono metrics degenerate: %+v", got)
		}
		if got.TypicalHalfwidthCharacterWidth != got.MaxDigitWidth {
			t.Errorf("halfwidth %v != max digit %v", got.TypicalHalfwidthCharacterWidth, got.MaxDigitWidth)
		}
	})

	t.Run("Proportional", func(t *testing.T) {
		lib := library.New()
		if _, err := lib.Register("Go", library.Regular, goregular.TTF); err != nil {
			t.Fatalf("Register: %v", err)
		}
		m := newMeasurer(lib)
		d := fontinfo.NewDescriptor("Go", "normal", 14, 19)
		got := fontinfo.Measure(d, m)
		if got.IsMonospace {
			t.Errorf("Go IsMonospace = true, metrics %+v", got)
		}
		if got.IsDegenerate() {
			t.Errorf("Go metrics degenerate: %+v", got)
		}
		if got.SpaceWidth == got.TypicalHalfwidthCharacterWidth {
			t.Errorf("Go SpaceWidth = TypicalHalfwidthCharacterWidth = %v; glyphs not told apart", got.SpaceWidth)
		}
		if i, w := m.Measure("i", fontinfo.StyleNormal, d), m.Measure("m", fontinfo.StyleNormal, d); i >= w {
			t.Errorf("Go Measure(i) = %v, Measure(m) = %v; want i < m", i, w)
		}
	})

	t.Run("SizeScales", func(t *testing.T) {
		lib := library.New()
		if _, err := lib.Register("Go Mono", library.Regular, gomono.TTF); err != nil {
			t.Fatalf("Register: %v", err)
		}
		m := newMeasurer(lib)
		small := m.Measure("n", fontinfo.StyleNormal, fontinfo.NewDescriptor("Go Mono", "normal", 10, 14))
		large := m.Measure("n", fontinfo.StyleNormal, fontinfo.NewDescriptor("Go Mono", "normal", 20, 28))
		if small <= 0 || large <= small {
			t.Errorf("Measure(n) at 10px = %v, at 20px = %v; want 0 < small < large", small, large)
		}
	})

	t.Run("LateRegistration", func(t *testing.T) {
		lib := library.New()
		sched := NewManualScheduler()
		r := fontinfo.New(newMeasurer(lib), fontinfo.WithScheduler(sched))
		t.Cleanup(r.Dispose)

		events := 0
		r.OnDidChange(func() { events++ })

		d := fontinfo.NewDescriptor("Go Mono, monospace", "normal", 14, 19)
		first := r.Read(d)
		if first.TypicalHalfwidthCharacterWidth != 5 || r.Pending() != 1 {
			t.Fatalf("unregistered Read = %+v, Pending = %d; want clamped, 1", first, r.Pending())
		}

		sched.Advance(fontinfo.DefaultRetryDelay)
		if events != 0 || r.Pending() != 1 {
			t.Fatalf("pass before registration: events = %d, Pending = %d; want 0, 1", events, r.Pending())
		}

		if _, err := lib.Register("Go Mono", library.Regular, gomono.TTF); err != nil {
			t.Fatalf("Register: %v", err)
		}
		sched.Advance(fontinfo.DefaultRetryDelay)
		if events != 1 {
			t.Errorf("events after registration = %d, want 1", events)
		}
		if r.Pending() != 0 || sched.Pending() != 0 {
			t.Errorf("Pending = %d, scheduled = %d; want 0, 0", r.Pending(), sched.Pending())
		}
		got := r.Read(d)
		if !got.IsMonospace || got.TypicalHalfwidthCharacterWidth <= 5 {
			t.Errorf("stabilised Read = %+v, want monospace wider than 5px", got)
		}
	})
}
