package library

import (
	"errors"
	"fmt"
)

// Sentinel errors for library.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("library: empty font data")

	// ErrEmptyFamily is returned when a face is registered without a
	// family name and the font carries none.
	ErrEmptyFamily = errors.New("library: empty family name")
)

// LoadError is returned when a font cannot be registered.
type LoadError struct {
	Family string
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("library: load %q from %s: %v", e.Family, e.Path, e.Err)
	}
	return fmt.Sprintf("library: load %q: %v", e.Family, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
