package fontinfo

import (
	"strconv"
	"strings"
)

// Descriptor identifies a font configuration: the family list, weight,
// size and line height the host asked for. Sizes are in device pixels.
//
// Descriptor is a comparable value type; two descriptors with equal fields
// are interchangeable and share a cache entry.
type Descriptor struct {
	// Family is a CSS-style family list, e.g. `"Fira Code", Menlo, monospace`.
	Family string

	// Weight is a CSS font-weight keyword or number ("normal", "bold", "100".."900").
	Weight string

	// Size is the font size in pixels.
	Size float64

	// LineHeight is the line height in pixels.
	LineHeight float64
}

// NewDescriptor returns a Descriptor with the given fields.
func NewDescriptor(family, weight string, size, lineHeight float64) Descriptor {
	return Descriptor{
		Family:     family,
		Weight:     weight,
		Size:       size,
		LineHeight: lineHeight,
	}
}

// ID returns the cache identity of d.
//
// The identity joins the four fields with '|'. Separator and escape
// characters inside Family and Weight are backslash-escaped, so two
// descriptors share an ID exactly when all four fields are equal.
func (d Descriptor) ID() string {
	var b strings.Builder
	b.Grow(len(d.Family) + len(d.Weight) + 24)
	writeEscaped(&b, d.Family)
	b.WriteByte('|')
	writeEscaped(&b, d.Weight)
	b.WriteByte('|')
	b.WriteString(formatDimension(d.Size))
	b.WriteByte('|')
	b.WriteString(formatDimension(d.LineHeight))
	return b.String()
}

// String implements fmt.Stringer.
func (d Descriptor) String() string {
	return d.ID()
}

// formatDimension writes v so that values equal under == format alike;
// -0 is written as 0.
func formatDimension(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '|' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
}
