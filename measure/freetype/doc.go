// Package freetype measures text with the pure Go port of FreeType.
//
// Faces are created through truetype.NewFace at 72 DPI, so a font size in
// points equals the descriptor size in pixels, and widths are summed with
// font.MeasureString, including pair kerning.
package freetype
