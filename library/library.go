package library

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/fontinfo"
)

// Face is one registered font binary.
//
// Face values are immutable after registration. ID is unique for the
// lifetime of the process and lets backends cache parsed fonts per face.
type Face struct {
	ID      uint64
	Family  string
	Variant Variant
	Data    []byte
}

var faceIDs atomic.Uint64

// Library is a registry of font faces by family and variant.
// Library is safe for concurrent use; faces may be registered while
// backends are measuring.
type Library struct {
	mu       sync.RWMutex
	families map[string]*family
	generics map[string]string
}

type family struct {
	name  string
	faces map[Variant]*Face
}

// New creates an empty library. The generic family "monospace" resolves
// to "Go Mono" once RegisterGoFonts has been called.
func New() *Library {
	return &Library{
		families: make(map[string]*family),
		generics: map[string]string{
			"monospace":  "Go Mono",
			"sans-serif": "Go",
			"serif":      "Go",
		},
	}
}

// Register adds a face for family. The data is parsed once to validate it
// and copied. If family is empty the font's own family name is used.
// Registering a variant twice replaces the previous face.
func (l *Library) Register(familyName string, v Variant, data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, &LoadError{Family: familyName, Err: ErrEmptyFontData}
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &LoadError{Family: familyName, Err: err}
	}
	if familyName == "" {
		familyName, _ = f.Name(nil, sfnt.NameIDFamily)
		if familyName == "" {
			return nil, &LoadError{Err: ErrEmptyFamily}
		}
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)
	face := &Face{
		ID:      faceIDs.Add(1),
		Family:  familyName,
		Variant: v,
		Data:    dataCopy,
	}

	key := normalize(familyName)
	l.mu.Lock()
	fam, ok := l.families[key]
	if !ok {
		fam = &family{name: familyName, faces: make(map[Variant]*Face)}
		l.families[key] = fam
	}
	fam.faces[v] = face
	l.mu.Unlock()

	fontinfo.Logger().Debug("library: registered face",
		"family", familyName, "variant", v.String(), "glyphs", f.NumGlyphs())
	return face, nil
}

// RegisterFile reads a TTF or OTF file and registers it.
func (l *Library) RegisterFile(familyName string, v Variant, path string) (*Face, error) {
	// #nosec G304 -- font path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Family: familyName, Path: path, Err: err}
	}
	face, err := l.Register(familyName, v, data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return face, nil
}

// SetGeneric maps a generic CSS family such as "monospace" to a
// registered family name.
func (l *Library) SetGeneric(generic, familyName string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generics[normalize(generic)] = familyName
}

// Has reports whether any face of the family is registered.
func (l *Library) Has(familyName string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.families[normalize(familyName)]
	return ok
}

// Families returns the registered family names, sorted.
func (l *Library) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.families))
	for _, f := range l.families {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

// Resolve picks the face for a CSS family list such as
// `"Fira Code", Menlo, monospace`. Families are tried in order; within a
// family the closest registered variant is used. Generic names are mapped
// through SetGeneric. It reports false when no listed family is
// registered.
func (l *Library) Resolve(familyList string, v Variant) (*Face, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, name := range SplitFamilies(familyList) {
		key := normalize(name)
		fam, ok := l.families[key]
		if !ok {
			generic, isGeneric := l.generics[key]
			if !isGeneric {
				continue
			}
			if fam, ok = l.families[normalize(generic)]; !ok {
				continue
			}
		}
		for _, fv := range v.fallbacks() {
			if face, ok := fam.faces[fv]; ok {
				return face, true
			}
		}
	}
	return nil, false
}

// SplitFamilies splits a CSS family list on commas, honouring single and
// double quotes, and trims whitespace and quotes from each name.
func SplitFamilies(list string) []string {
	var (
		names []string
		cur   strings.Builder
		quote rune
	)
	flush := func() {
		if name := strings.TrimSpace(cur.String()); name != "" {
			names = append(names, name)
		}
		cur.Reset()
	}
	for _, r := range list {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '"' || r == '\''):
			quote = r
		case quote == 0 && r == ',':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// String returns a short description of the face.
func (f *Face) String() string {
	return fmt.Sprintf("%s (%s)", f.Family, f.Variant)
}
