package canvasmeasure

import (
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/library"
)

const (
	pxPerInch = 96.0
	ptPerInch = 72.0
	mmPerInch = 25.4
)

// Measurer implements fontinfo.TextMeasurer on canvas font faces.
// Each library face is loaded into its own canvas family as the regular
// style, since the library has already picked the variant.
type Measurer struct {
	lib *library.Library

	mu       sync.Mutex
	families map[uint64]*canvas.FontFamily
}

// New creates a measurer resolving faces in lib.
func New(lib *library.Library) *Measurer {
	return &Measurer{
		lib:      lib,
		families: make(map[uint64]*canvas.FontFamily),
	}
}

// Measure implements fontinfo.TextMeasurer.
func (m *Measurer) Measure(ch string, style fontinfo.Style, d fontinfo.Descriptor) float64 {
	face, ok := m.lib.Resolve(d.Family, library.VariantFor(style, d.Weight))
	if !ok {
		fontinfo.Logger().Debug("canvas: family not registered", "family", d.Family)
		return 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	family, err := m.family(face)
	if err != nil {
		fontinfo.Logger().Warn("canvas: load failed", "face", face.String(), "err", err)
		return 0
	}
	ff := family.Face(pxToPt(d.Size), canvas.Black, canvas.FontRegular, canvas.FontNormal)
	return mmToPx(textWidth(ff, ch))
}

// textWidth returns the width of s in millimetres. Runes are mapped
// through the face's cmap and their hmtx advances summed; runes missing
// from the font take the .notdef advance. FontFace.TextWidth is not used
// because its shaper resolves every rune to .notdef for fonts loaded from
// memory.
func textWidth(ff *canvas.FontFace, s string) float64 {
	var units int
	for _, r := range s {
		units += int(ff.Font.GlyphAdvance(ff.Font.GlyphIndex(r)))
	}
	return ff.MmPerEm * float64(units)
}

func (m *Measurer) family(face *library.Face) (*canvas.FontFamily, error) {
	if fam, ok := m.families[face.ID]; ok {
		return fam, nil
	}
	fam := canvas.NewFontFamily(face.String())
	if err := fam.LoadFont(face.Data, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	m.families[face.ID] = fam
	return fam, nil
}

func pxToPt(px float64) float64 {
	return px * ptPerInch / pxPerInch
}

func mmToPx(mm float64) float64 {
	return mm * pxPerInch / mmPerInch
}

var _ fontinfo.TextMeasurer = (*Measurer)(nil)
