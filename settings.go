package fontinfo

import (
	"math"
	"runtime"
	"strconv"
	"strings"
)

// Limits applied by FromSettings.
const (
	MinFontSize   = 6
	MaxFontSize   = 100
	MinLineHeight = 8
	MaxLineHeight = 150
)

// Settings holds raw, user-provided font settings as found in an editor
// configuration file. Zero values select platform defaults.
type Settings struct {
	FontFamily string  `toml:"fontFamily" yaml:"fontFamily"`
	FontWeight string  `toml:"fontWeight" yaml:"fontWeight"`
	FontSize   float64 `toml:"fontSize" yaml:"fontSize"`

	// LineHeight is in pixels. 0 derives it from the font size, and values
	// below MinLineHeight are multipliers of the font size.
	LineHeight float64 `toml:"lineHeight" yaml:"lineHeight"`

	// ZoomLevel scales the font size by 10% per step.
	ZoomLevel float64 `toml:"zoomLevel" yaml:"zoomLevel"`
}

// platformDefaults are the per-OS defaults for family, size and the
// line-height ratio.
type platformDefaults struct {
	family    string
	size      float64
	lineRatio float64
}

func defaultsFor(goos string) platformDefaults {
	switch goos {
	case "darwin":
		return platformDefaults{family: "Menlo, Monaco, 'Courier New', monospace", size: 12, lineRatio: 1.5}
	case "windows":
		return platformDefaults{family: "Consolas, 'Courier New', monospace", size: 14, lineRatio: 1.35}
	default:
		return platformDefaults{family: "'Droid Sans Mono', 'monospace', monospace", size: 14, lineRatio: 1.35}
	}
}

// FromSettings normalises raw settings into a Descriptor for the current
// platform. It never fails: invalid values fall back to defaults.
func FromSettings(s Settings) Descriptor {
	return fromSettings(s, defaultsFor(runtime.GOOS))
}

func fromSettings(s Settings, def platformDefaults) Descriptor {
	family := strings.TrimSpace(s.FontFamily)
	if family == "" {
		family = def.family
	}

	weight, err := ParseWeight(s.FontWeight)
	if err != nil {
		weight = "normal"
	}

	size := s.FontSize
	if !isFinite(size) || size <= 0 {
		size = def.size
	}
	size = clamp(size, MinFontSize, MaxFontSize)
	if isFinite(s.ZoomLevel) && s.ZoomLevel != 0 {
		size = math.Max(size*(1+0.1*s.ZoomLevel), 1)
	}

	lineHeight := s.LineHeight
	switch {
	case !isFinite(lineHeight) || lineHeight <= 0:
		lineHeight = math.Round(def.lineRatio * size)
	case lineHeight < MinLineHeight:
		lineHeight = math.Round(lineHeight * size)
	}
	lineHeight = clamp(lineHeight, MinLineHeight, MaxLineHeight)

	return Descriptor{
		Family:     family,
		Weight:     weight,
		Size:       size,
		LineHeight: lineHeight,
	}
}

// ParseWeight validates a CSS font-weight value. It accepts "normal",
// "bold", and the multiples of 100 from 100 to 900. An empty string is
// "normal".
func ParseWeight(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "normal":
		return "normal", nil
	case "bold":
		return "bold", nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 100 || n > 900 || n%100 != 0 {
		return "", &SettingError{Setting: "fontWeight", Value: s, Err: ErrInvalidWeight}
	}
	return s, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
