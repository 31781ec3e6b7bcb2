// Package canvasmeasure measures text with github.com/tdewolff/canvas font faces.
//
// canvas works in points and millimetres. Descriptor sizes are CSS pixels
// (96 per inch), so sizes are converted to points before a face is built
// and widths are converted back from millimetres. Widths are the sum of
// the hmtx advances of each rune's cmap glyph; no shaping is applied.
package canvasmeasure
