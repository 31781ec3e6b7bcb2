package gotext

import (
	"bytes"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/library"
)

// Measurer implements fontinfo.TextMeasurer with HarfBuzz shaping.
//
// Measurer is safe for concurrent use. Parsed font.Font values are cached
// per library face; a font.Face is created per call because it is not
// safe for concurrent use. HarfbuzzShaper instances are pooled.
type Measurer struct {
	lib *library.Library

	shaperPool sync.Pool

	mu    sync.RWMutex
	fonts map[uint64]*font.Font

	lang language.Language
}

// New creates a measurer resolving faces in lib.
func New(lib *library.Library) *Measurer {
	return &Measurer{
		lib: lib,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fonts: make(map[uint64]*font.Font),
		lang:  language.NewLanguage("en"),
	}
}

// Measure implements fontinfo.TextMeasurer. It returns the total advance
// of the shaped run, or 0 when no family of d is registered.
func (m *Measurer) Measure(ch string, style fontinfo.Style, d fontinfo.Descriptor) float64 {
	if ch == "" {
		return 0
	}
	face, ok := m.lib.Resolve(d.Family, library.VariantFor(style, d.Weight))
	if !ok {
		fontinfo.Logger().Debug("gotext: family not registered", "family", d.Family)
		return 0
	}
	f, err := m.font(face)
	if err != nil {
		fontinfo.Logger().Warn("gotext: parse failed", "face", face.String(), "err", err)
		return 0
	}

	runes := []rune(ch)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      floatToFixed(d.Size),
		Script:    detectScript(runes),
		Language:  m.lang,
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shaperPool.Put(hb)

	return fixedToFloat(out.Advance)
}

// ClearCache drops all parsed fonts.
func (m *Measurer) ClearCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fonts = make(map[uint64]*font.Font)
}

func (m *Measurer) font(face *library.Face) (*font.Font, error) {
	m.mu.RLock()
	if f, ok := m.fonts[face.ID]; ok {
		m.mu.RUnlock()
		return f, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if f, ok := m.fonts[face.ID]; ok {
		return f, nil
	}
	parsed, err := font.ParseTTF(bytes.NewReader(face.Data))
	if err != nil {
		return nil, err
	}
	m.fonts[face.ID] = parsed.Font
	return parsed.Font, nil
}

// detectScript returns the script of the first non-space rune.
// Probes are single-script, so no run splitting is done.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed rounds to the nearest 1/64 px, as the ximage backend does.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(size * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

var _ fontinfo.TextMeasurer = (*Measurer)(nil)
