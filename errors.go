package fontinfo

import (
	"errors"
	"fmt"
)

// Sentinel errors for fontinfo.
var (
	// ErrInvalidWeight is returned by ParseWeight for values that are not
	// a CSS font-weight.
	ErrInvalidWeight = errors.New("fontinfo: invalid font weight")

	// ErrInvalidSize is returned for non-positive or non-finite sizes.
	ErrInvalidSize = errors.New("fontinfo: invalid font size")
)

// SettingError describes a rejected setting value.
type SettingError struct {
	Setting string
	Value   any
	Err     error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("fontinfo: setting %s: %v: %v", e.Setting, e.Value, e.Err)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}
