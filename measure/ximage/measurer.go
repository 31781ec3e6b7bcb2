package ximage

import (
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/internal/cache"
	"github.com/gogpu/fontinfo/library"
)

// DefaultAdvanceCacheSize bounds the memoised glyph advances.
const DefaultAdvanceCacheSize = 4096

// Measurer implements fontinfo.TextMeasurer on parsed OpenType fonts.
// Measurer is safe for concurrent use.
type Measurer struct {
	lib     *library.Library
	hinting font.Hinting

	mu    sync.RWMutex
	fonts map[uint64]*opentype.Font

	advances *cache.Cache[advanceKey, float64]
}

type advanceKey struct {
	face uint64
	r    rune
	ppem fixed.Int26_6
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithHinting sets the hinting used for advances. The default is
// font.HintingNone, which keeps fractional widths.
func WithHinting(h font.Hinting) Option {
	return func(m *Measurer) {
		m.hinting = h
	}
}

// WithAdvanceCacheSize bounds the advance cache. 0 means unlimited.
func WithAdvanceCacheSize(n int) Option {
	return func(m *Measurer) {
		m.advances = cache.New[advanceKey, float64](n)
	}
}

// New creates a measurer resolving faces in lib.
func New(lib *library.Library, opts ...Option) *Measurer {
	m := &Measurer{
		lib:      lib,
		hinting:  font.HintingNone,
		fonts:    make(map[uint64]*opentype.Font),
		advances: cache.New[advanceKey, float64](DefaultAdvanceCacheSize),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Measure implements fontinfo.TextMeasurer.
// It returns 0 when no family of d is registered or the face fails to parse.
func (m *Measurer) Measure(ch string, style fontinfo.Style, d fontinfo.Descriptor) float64 {
	face, ok := m.lib.Resolve(d.Family, library.VariantFor(style, d.Weight))
	if !ok {
		fontinfo.Logger().Debug("ximage: family not registered", "family", d.Family)
		return 0
	}
	f, err := m.font(face)
	if err != nil {
		fontinfo.Logger().Warn("ximage: parse failed", "face", face.String(), "err", err)
		return 0
	}

	ppem := fixed.Int26_6(math.Round(d.Size * 64))
	var total float64
	for _, r := range ch {
		key := advanceKey{face: face.ID, r: r, ppem: ppem}
		total += m.advances.GetOrCreate(key, func() float64 {
			return m.advance(f, r, ppem)
		})
	}
	return total
}

// Stats returns the advance cache statistics.
func (m *Measurer) Stats() cache.Stats {
	return m.advances.Stats()
}

// ClearCache drops parsed fonts and memoised advances.
func (m *Measurer) ClearCache() {
	m.mu.Lock()
	m.fonts = make(map[uint64]*opentype.Font)
	m.mu.Unlock()
	m.advances.Clear()
}

// advance returns the advance of r. Runes missing from the font use the
// .notdef glyph, as a renderer would draw it.
func (m *Measurer) advance(f *opentype.Font, r rune, ppem fixed.Int26_6) float64 {
	var buf sfnt.Buffer
	idx, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	adv, err := f.GlyphAdvance(&buf, idx, ppem, m.hinting)
	if err != nil {
		return 0
	}
	return fixedToFloat64(adv)
}

func (m *Measurer) font(face *library.Face) (*opentype.Font, error) {
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
	f, err := opentype.Parse(face.Data)
	if err != nil {
		return nil, err
	}
	m.fonts[face.ID] = f
	return f, nil
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

var _ fontinfo.TextMeasurer = (*Measurer)(nil)
