package fontinfo

import (
	"math"

	"golang.org/x/text/width"
)

// DefaultTolerance is the largest width difference, in pixels, still
// considered equal by the monospace check.
const DefaultTolerance = 0.001

// Style selects the variant of a font a glyph is measured in.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleBold
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleItalic:
		return "italic"
	case StyleBold:
		return "bold"
	default:
		return "unknown"
	}
}

// TextMeasurer measures the rendered width of a single character.
//
// Implementations are supplied by the host. Measure must be deterministic
// once the requested font is available, and may return values of 2 px or
// less while it is still loading.
type TextMeasurer interface {
	Measure(ch string, style Style, d Descriptor) float64
}

// MeasurerFunc adapts a function to the TextMeasurer interface.
type MeasurerFunc func(ch string, style Style, d Descriptor) float64

// Measure implements TextMeasurer.
func (f MeasurerFunc) Measure(ch string, style Style, d Descriptor) float64 {
	return f(ch, style, d)
}

// Probe characters.
const (
	halfwidthProbe = "n"
	spaceProbe     = " "
	arrowProbe     = "→"
	middotProbe    = "·"
	wsMiddotProbe  = "⸱"
)

var (
	// fullwidthProbe is U+FF4D, the fullwidth form of 'm'.
	fullwidthProbe = width.Widen.String("m")

	digitProbes = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

	// shapeProbes cover thin, wide and descending glyphs.
	shapeProbes = []string{"|", "/", "-", "_", "i", "l", "m"}

	// variantProbes are re-measured in italic and bold.
	variantProbes = []string{"|", "_", "i", "l", "m", "n"}
)

// Measure runs the measurement algorithm for d against m.
//
// It measures 'n' and fullwidth 'm' and then decides monospace-ness by
// comparing a fixed probe set, in normal, italic and bold, against the
// width of 'n' within DefaultTolerance. The result is returned as is,
// degenerate or not.
func Measure(d Descriptor, m TextMeasurer) Metrics {
	return measure(d, m, DefaultTolerance)
}

func measure(d Descriptor, m TextMeasurer, tolerance float64) Metrics {
	p := probe{m: m, d: d, tolerance: tolerance, monospace: true}

	half := m.Measure(halfwidthProbe, StyleNormal, d)
	full := m.Measure(fullwidthProbe, StyleNormal, d)
	p.baseline = half

	space := p.check(spaceProbe, StyleNormal)

	maxDigit := 0.0
	for _, ch := range digitProbes {
		maxDigit = math.Max(maxDigit, p.check(ch, StyleNormal))
	}

	arrow := p.check(arrowProbe, StyleNormal)
	middot := p.check(middotProbe, StyleNormal)

	for _, ch := range shapeProbes {
		p.check(ch, StyleNormal)
	}
	for _, style := range []Style{StyleItalic, StyleBold} {
		for _, ch := range variantProbes {
			p.check(ch, style)
		}
	}

	wsMiddot := m.Measure(wsMiddotProbe, StyleNormal, d)

	return Metrics{
		Family:                         d.Family,
		Weight:                         d.Weight,
		Size:                           d.Size,
		LineHeight:                     d.LineHeight,
		IsMonospace:                    p.monospace,
		TypicalHalfwidthCharacterWidth: half,
		TypicalFullwidthCharacterWidth: full,
		SpaceWidth:                     space,
		MaxDigitWidth:                  maxDigit,
		MiddotWidth:                    middot,
		WSMiddotWidth:                  wsMiddot,
		CanUseHalfwidthRightwardsArrow: math.Abs(arrow-half) <= tolerance,
	}
}

// probe accumulates the monospace hypothesis across measurements.
type probe struct {
	m         TextMeasurer
	d         Descriptor
	baseline  float64
	tolerance float64
	monospace bool
}

func (p *probe) check(ch string, style Style) float64 {
	w := p.m.Measure(ch, style, p.d)
	if math.Abs(w-p.baseline) > p.tolerance {
		p.monospace = false
	}
	return w
}
