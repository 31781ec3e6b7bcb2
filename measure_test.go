package fontinfo

import (
	"fmt"
	"testing"
)

// tableMeasurer returns def for every character except the overrides,
// keyed by style and character.
type tableMeasurer struct {
	def       float64
	overrides map[Style]map[string]float64
	calls     []string
}

func (m *tableMeasurer) Measure(ch string, style Style, _ Descriptor) float64 {
	m.calls = append(m.calls, fmt.Sprintf("%s:%s", style, ch))
	if w, ok := m.overrides[style][ch]; ok {
		return w
	}
	return m.def
}

func TestMeasureUniformIsMonospace(t *testing.T) {
	m := Measure(testDescriptor, constMeasurer(7))
	if !m.IsMonospace {
		t.Error("uniform widths should be monospace")
	}
	if m.TypicalHalfwidthCharacterWidth != 7 || m.TypicalFullwidthCharacterWidth != 7 ||
		m.SpaceWidth != 7 || m.MaxDigitWidth != 7 {
		t.Errorf("widths = %+v, want all 7", m)
	}
	if m.Descriptor() != testDescriptor {
		t.Errorf("Descriptor() = %+v, want %+v", m.Descriptor(), testDescriptor)
	}
	if !m.CanUseHalfwidthRightwardsArrow {
		t.Error("uniform widths should allow the halfwidth arrow")
	}
}

func TestMeasureAnyDeviationBreaksMonospace(t *testing.T) {
	type probeCase struct {
		style Style
		ch    string
	}
	var cases []probeCase
	for _, ch := range append(append([]string{" ", arrowProbe, middotProbe}, digitProbes...), shapeProbes...) {
		cases = append(cases, probeCase{StyleNormal, ch})
	}
	for _, style := range []Style{StyleItalic, StyleBold} {
		for _, ch := range variantProbes {
			cases = append(cases, probeCase{style, ch})
		}
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s/%q", c.style, c.ch), func(t *testing.T) {
			m := &tableMeasurer{
				def:       7,
				overrides: map[Style]map[string]float64{c.style: {c.ch: 7.5}},
			}
			if Measure(testDescriptor, m).IsMonospace {
				t.Errorf("deviation on %s %q not detected", c.style, c.ch)
			}
		})
	}
}

func TestMeasureTolerance(t *testing.T) {
	m := &tableMeasurer{
		def:       7,
		overrides: map[Style]map[string]float64{StyleBold: {"m": 7.0009}, StyleNormal: {"1": 6.9995}},
	}
	if !Measure(testDescriptor, m).IsMonospace {
		t.Error("sub-tolerance noise should not break monospace")
	}

	m.overrides[StyleItalic] = map[string]float64{"l": 7.002}
	if Measure(testDescriptor, m).IsMonospace {
		t.Error("0.002 px deviation should break monospace")
	}
}

func TestMeasureFullwidthDoesNotAffectMonospace(t *testing.T) {
	m := &tableMeasurer{
		def:       7,
		overrides: map[Style]map[string]float64{StyleNormal: {fullwidthProbe: 14, wsMiddotProbe: 3}},
	}
	got := Measure(testDescriptor, m)
	if !got.IsMonospace {
		t.Error("fullwidth and wsmiddot widths must not take part in the monospace check")
	}
	if got.TypicalFullwidthCharacterWidth != 14 {
		t.Errorf("fullwidth = %v, want 14", got.TypicalFullwidthCharacterWidth)
	}
	if got.WSMiddotWidth != 3 {
		t.Errorf("wsmiddot = %v, want 3", got.WSMiddotWidth)
	}
}

func TestMeasureMaxDigitWidth(t *testing.T) {
	m := &tableMeasurer{
		def: 7,
		overrides: map[Style]map[string]float64{StyleNormal: {
			"0": 6, "1": 4, "4": 8.25, "7": 8.2, "9": 5,
		}},
	}
	got := Measure(testDescriptor, m)
	if got.MaxDigitWidth != 8.25 {
		t.Errorf("MaxDigitWidth = %v, want 8.25", got.MaxDigitWidth)
	}
	if got.IsMonospace {
		t.Error("differing digits should not be monospace")
	}
}

func TestMeasureProbeOrder(t *testing.T) {
	m := &tableMeasurer{def: 7}
	Measure(testDescriptor, m)

	if len(m.calls) < 2 || m.calls[0] != "normal:n" || m.calls[1] != "normal:"+fullwidthProbe {
		t.Fatalf("first calls = %v, want normal:n then the fullwidth probe", m.calls[:2])
	}
	counts := map[string]int{}
	for _, c := range m.calls {
		counts[c]++
	}
	for _, want := range []string{"normal: ", "normal:9", "italic:n", "bold:|", "bold:n", "normal:" + wsMiddotProbe} {
		if counts[want] == 0 {
			t.Errorf("probe %q was not measured", want)
		}
	}
}

func TestFullwidthProbe(t *testing.T) {
	if fullwidthProbe != "ｍ" {
		t.Errorf("fullwidthProbe = %q, want U+FF4D", fullwidthProbe)
	}
}

func TestMeasurerFunc(t *testing.T) {
	f := MeasurerFunc(func(ch string, style Style, d Descriptor) float64 {
		if style == StyleBold {
			return 9
		}
		return 8
	})
	got := Measure(testDescriptor, f)
	if got.IsMonospace {
		t.Error("bold deviation should break monospace")
	}
	if got.TypicalHalfwidthCharacterWidth != 8 {
		t.Errorf("halfwidth = %v, want 8", got.TypicalHalfwidthCharacterWidth)
	}
}

func TestStyleString(t *testing.T) {
	tests := map[Style]string{StyleNormal: "normal", StyleItalic: "italic", StyleBold: "bold", Style(9): "unknown"}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("Style(%d).String() = %q, want %q", s, s.String(), want)
		}
	}
}

func BenchmarkMeasure(b *testing.B) {
	m := constMeasurer(7)
	b.ReportAllocs()
	for b.Loop() {
		_ = Measure(testDescriptor, m)
	}
}
