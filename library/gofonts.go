package library

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Family names of the bundled Go fonts.
const (
	GoFamily     = "Go"
	GoMonoFamily = "Go Mono"
)

var goFonts = []struct {
	family  string
	variant Variant
	data    []byte
}{
	{GoFamily, Regular, goregular.TTF},
	{GoFamily, Bold, gobold.TTF},
	{GoFamily, Italic, goitalic.TTF},
	{GoFamily, BoldItalic, gobolditalic.TTF},
	{GoMonoFamily, Regular, gomono.TTF},
	{GoMonoFamily, Bold, gomonobold.TTF},
	{GoMonoFamily, Italic, gomonoitalic.TTF},
	{GoMonoFamily, BoldItalic, gomonobolditalic.TTF},
}

// RegisterGoFonts registers the Go and Go Mono families bundled with
// golang.org/x/image.
func (l *Library) RegisterGoFonts() error {
	for _, f := range goFonts {
		if _, err := l.Register(f.family, f.variant, f.data); err != nil {
			return err
		}
	}
	return nil
}

// RegisterGoMono registers only the regular Go Mono face.
func (l *Library) RegisterGoMono() error {
	_, err := l.Register(GoMonoFamily, Regular, gomono.TTF)
	return err
}
