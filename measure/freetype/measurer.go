package freetype

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/internal/cache"
	"github.com/gogpu/fontinfo/library"
)

// DefaultFaceCacheSize bounds the number of sized faces kept alive.
const DefaultFaceCacheSize = 64

// Measurer implements fontinfo.TextMeasurer with golang/freetype.
//
// truetype faces keep per-face glyph buffers and are not safe for
// concurrent use, so Measure is serialised.
type Measurer struct {
	lib     *library.Library
	hinting font.Hinting

	mu    sync.Mutex
	fonts map[uint64]*truetype.Font
	faces *cache.Cache[faceKey, font.Face]
}

type faceKey struct {
	face uint64
	size float64
}

// Option configures a Measurer.
type Option func(*Measurer)

// WithHinting sets the hinting passed to truetype.NewFace.
func WithHinting(h font.Hinting) Option {
	return func(m *Measurer) {
		m.hinting = h
	}
}

// New creates a measurer resolving faces in lib.
func New(lib *library.Library, opts ...Option) *Measurer {
	m := &Measurer{
		lib:     lib,
		hinting: font.HintingNone,
		fonts:   make(map[uint64]*truetype.Font),
		faces:   cache.New[faceKey, font.Face](DefaultFaceCacheSize),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Measure implements fontinfo.TextMeasurer.
func (m *Measurer) Measure(ch string, style fontinfo.Style, d fontinfo.Descriptor) float64 {
	face, ok := m.lib.Resolve(d.Family, library.VariantFor(style, d.Weight))
	if !ok {
		fontinfo.Logger().Debug("freetype: family not registered", "family", d.Family)
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := m.font(face)
	if err != nil {
		fontinfo.Logger().Warn("freetype: parse failed", "face", face.String(), "err", err)
		return 0
	}
	ff := m.faces.GetOrCreate(faceKey{face: face.ID, size: d.Size}, func() font.Face {
		return truetype.NewFace(f, &truetype.Options{
			Size:    d.Size,
			DPI:     72,
			Hinting: m.hinting,
		})
	})
	adv := font.MeasureString(ff, ch)
	return float64(adv) / 64.0
}

func (m *Measurer) font(face *library.Face) (*truetype.Font, error) {
	if f, ok := m.fonts[face.ID]; ok {
		return f, nil
	}
	f, err := truetype.Parse(face.Data)
	if err != nil {
		return nil, err
	}
	m.fonts[face.ID] = f
	return f, nil
}

var _ fontinfo.TextMeasurer = (*Measurer)(nil)
