package library

import (
	"strconv"
	"strings"

	"github.com/gogpu/fontinfo"
)

// Variant identifies one face of a family.
type Variant uint8

const (
	Regular Variant = iota
	Bold
	Italic
	BoldItalic
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case Regular:
		return "regular"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// ParseVariant parses a variant name as written in configuration files.
// Unknown names report false.
func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regular", "normal":
		return Regular, true
	case "bold":
		return Bold, true
	case "italic", "oblique":
		return Italic, true
	case "bold-italic", "bolditalic", "bold italic":
		return BoldItalic, true
	default:
		return Regular, false
	}
}

// VariantFor returns the variant a backend should measure for a probe in
// the given style under a descriptor weight. Weights of 600 and above, and
// "bold", select the bold faces.
func VariantFor(style fontinfo.Style, weight string) Variant {
	bold := style == fontinfo.StyleBold || IsBoldWeight(weight)
	italic := style == fontinfo.StyleItalic
	switch {
	case bold && italic:
		return BoldItalic
	case bold:
		return Bold
	case italic:
		return Italic
	default:
		return Regular
	}
}

// IsBoldWeight reports whether a CSS weight renders with a bold face.
func IsBoldWeight(weight string) bool {
	w := strings.ToLower(strings.TrimSpace(weight))
	if w == "bold" || w == "bolder" {
		return true
	}
	n, err := strconv.Atoi(w)
	return err == nil && n >= 600
}

// fallbacks lists the variants tried, in order, when resolving v.
func (v Variant) fallbacks() []Variant {
	switch v {
	case BoldItalic:
		return []Variant{BoldItalic, Italic, Bold, Regular}
	case Bold:
		return []Variant{Bold, Regular}
	case Italic:
		return []Variant{Italic, Regular}
	default:
		return []Variant{Regular}
	}
}
