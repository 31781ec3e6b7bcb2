package fontinfo

import (
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	// degenerateWidth is the largest width, in device pixels, that is
	// treated as a measurement of a font that has not finished loading.
	degenerateWidth = 2

	// clampedWidth is the floor applied to degenerate widths so callers
	// always lay out with a usable value.
	clampedWidth = 5
)

// Metrics holds the rendered characteristics measured for a Descriptor.
// All widths are in device pixels.
type Metrics struct {
	Family     string
	Weight     string
	Size       float64
	LineHeight float64

	// IsMonospace reports whether every probe glyph, in normal, italic and
	// bold, rendered at the width of 'n'.
	IsMonospace bool

	// TypicalHalfwidthCharacterWidth is the width of 'n'.
	TypicalHalfwidthCharacterWidth float64

	// TypicalFullwidthCharacterWidth is the width of U+FF4D (fullwidth 'm').
	TypicalFullwidthCharacterWidth float64

	SpaceWidth    float64
	MaxDigitWidth float64

	// MiddotWidth and WSMiddotWidth are the widths of U+00B7 and U+2E31,
	// the glyphs used to render whitespace.
	MiddotWidth   float64
	WSMiddotWidth float64

	// CanUseHalfwidthRightwardsArrow reports whether U+2192 fits in a
	// halfwidth cell and may therefore be used to render tabs.
	CanUseHalfwidthRightwardsArrow bool
}

// Descriptor returns the descriptor the metrics were measured for.
func (m Metrics) Descriptor() Descriptor {
	return Descriptor{
		Family:     m.Family,
		Weight:     m.Weight,
		Size:       m.Size,
		LineHeight: m.LineHeight,
	}
}

// IsDegenerate reports whether any of the four core widths is at most
// 2 px, which happens when the measuring surface fell back to a font
// that was not the one requested. NaN widths are degenerate.
func (m Metrics) IsDegenerate() bool {
	return degenerate(m.TypicalHalfwidthCharacterWidth) ||
		degenerate(m.TypicalFullwidthCharacterWidth) ||
		degenerate(m.SpaceWidth) ||
		degenerate(m.MaxDigitWidth)
}

// needsRemeasure is the degeneracy test used by monitor passes. It does
// not look at SpaceWidth: a stable font whose space is narrower than 2 px
// is accepted once the other widths are sane.
func (m Metrics) needsRemeasure() bool {
	return degenerate(m.TypicalHalfwidthCharacterWidth) ||
		degenerate(m.TypicalFullwidthCharacterWidth) ||
		degenerate(m.MaxDigitWidth)
}

func degenerate(w float64) bool {
	return !(w > degenerateWidth)
}

// Clamp returns a copy of m with each of the four core widths raised to
// at least 5 px; NaN becomes 5 px. Every other field is passed through.
func (m Metrics) Clamp() Metrics {
	m.TypicalHalfwidthCharacterWidth = clampWidth(m.TypicalHalfwidthCharacterWidth)
	m.TypicalFullwidthCharacterWidth = clampWidth(m.TypicalFullwidthCharacterWidth)
	m.SpaceWidth = clampWidth(m.SpaceWidth)
	m.MaxDigitWidth = clampWidth(m.MaxDigitWidth)
	return m
}

func clampWidth(w float64) float64 {
	if !(w >= clampedWidth) {
		return clampedWidth
	}
	return w
}

// TextWidth returns the pixel width of s laid out on a fixed-width grid.
//
// s is split into grapheme clusters. Clusters occupying two terminal
// cells count as one fullwidth character, zero-width clusters count as
// nothing, and a tab advances to the next multiple of tabSize halfwidth
// columns. Everything else counts as one halfwidth character (a space
// counts as SpaceWidth).
func (m Metrics) TextWidth(s string, tabSize int) float64 {
	if tabSize <= 0 {
		tabSize = 4
	}

	var (
		px    float64
		state = -1
	)
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)

		switch {
		case cluster == "\t":
			col := m.Columns(px)
			next := (col/tabSize + 1) * tabSize
			px = float64(next) * m.TypicalHalfwidthCharacterWidth
		case cluster == " ":
			px += m.SpaceWidth
		case strings.HasPrefix(cluster, "\r") || strings.HasPrefix(cluster, "\n"):
			// line breaks take no horizontal space
		case width >= 2:
			px += m.TypicalFullwidthCharacterWidth
		case width == 1:
			px += m.TypicalHalfwidthCharacterWidth
		}
	}
	return px
}

// Columns returns how many halfwidth columns fit in px.
func (m Metrics) Columns(px float64) int {
	if m.TypicalHalfwidthCharacterWidth <= 0 {
		return 0
	}
	// Nudge by the monospace tolerance so 3*w/w does not round down to 2.
	return int(math.Floor(px/m.TypicalHalfwidthCharacterWidth + DefaultTolerance))
}

// Equal reports whether m and o carry identical values.
func (m Metrics) Equal(o Metrics) bool {
	return m == o
}
