// Package ximage measures text with golang.org/x/image/font/opentype.
//
// Advances are read from the hmtx table through sfnt and summed per rune.
// No shaping is applied, which matches how a terminal-style grid places
// one cell per character.
//
// Usage:
//
//	lib := library.New()
//	_ = lib.RegisterGoFonts()
//	reg := fontinfo.New(ximage.New(lib))
package ximage
