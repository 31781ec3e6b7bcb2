// Package measure groups the font-backed implementations of
// fontinfo.TextMeasurer.
//
// Each subpackage resolves descriptors against a library.Library and
// measures probe strings with a different rasterisation stack:
//
//   - ximage: golang.org/x/image/font/opentype (default)
//   - gotext: github.com/go-text/typesetting HarfBuzz shaping
//   - freetype: github.com/golang/freetype/truetype
//   - canvas (package canvasmeasure): github.com/tdewolff/canvas font faces
//
// All backends return 0 for a family that is not registered yet, which
// the Registry treats as a degenerate measurement and retries.
package measure
