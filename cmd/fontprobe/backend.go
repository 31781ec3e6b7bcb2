package main

import (
	"fmt"
	"sort"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/library"
	canvasmeasure "github.com/gogpu/fontinfo/measure/canvas"
	"github.com/gogpu/fontinfo/measure/freetype"
	"github.com/gogpu/fontinfo/measure/gotext"
	"github.com/gogpu/fontinfo/measure/ximage"
)

var backends = map[string]func(*library.Library) fontinfo.TextMeasurer{
	"ximage":   func(lib *library.Library) fontinfo.TextMeasurer { return ximage.New(lib) },
	"gotext":   func(lib *library.Library) fontinfo.TextMeasurer { return gotext.New(lib) },
	"freetype": func(lib *library.Library) fontinfo.TextMeasurer { return freetype.New(lib) },
	"canvas":   func(lib *library.Library) fontinfo.TextMeasurer { return canvasmeasure.New(lib) },
}

func newMeasurer(name string, lib *library.Library) (fontinfo.TextMeasurer, error) {
	if name == "" {
		name = "ximage"
	}
	ctor, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("fontprobe: unknown backend %q (have %v)", name, backendNames())
	}
	return ctor(lib), nil
}

func backendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
