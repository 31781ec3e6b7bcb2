package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/fontinfo"
	"github.com/gogpu/fontinfo/library"
	"github.com/gogpu/fontinfo/shorthand"
)

var errUnknownFormat = errors.New("fontprobe: unknown config format")

// Config is the probe file. The format is chosen by extension:
// .toml, or .yaml/.yml.
type Config struct {
	Backend string     `toml:"backend" yaml:"backend"`
	Wait    string     `toml:"wait" yaml:"wait"`
	GoFonts *bool      `toml:"goFonts" yaml:"goFonts"`
	Fonts   []FontFile `toml:"fonts" yaml:"fonts"`
	Probes  []Probe    `toml:"probes" yaml:"probes"`
}

// FontFile registers one font binary with the library.
type FontFile struct {
	Family  string `toml:"family" yaml:"family"`
	Variant string `toml:"variant" yaml:"variant"`
	Path    string `toml:"path" yaml:"path"`
}

// Probe names one descriptor to measure, either as a CSS shorthand in
// Font or as editor settings.
type Probe struct {
	Name     string            `toml:"name" yaml:"name"`
	Font     string            `toml:"font" yaml:"font"`
	Settings fontinfo.Settings `toml:"settings" yaml:"settings"`
}

// ParseError describes a config file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fontprobe: parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadConfig reads and decodes the probe file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontprobe: reading config %s: %w", path, err)
	}
	return ParseConfig(path, data)
}

// ParseConfig decodes data using the format implied by the extension of
// path.
func ParseConfig(path string, data []byte) (*Config, error) {
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	default:
		return nil, &ParseError{Path: path, Err: errUnknownFormat}
	}
	return &cfg, nil
}

// WaitDuration returns the configured wait, or def when unset.
func (c *Config) WaitDuration(def time.Duration) (time.Duration, error) {
	if c.Wait == "" {
		return def, nil
	}
	d, err := time.ParseDuration(c.Wait)
	if err != nil {
		return 0, fmt.Errorf("fontprobe: wait: %w", err)
	}
	return d, nil
}

// UseGoFonts reports whether the bundled Go fonts are registered.
// They are unless the file turns them off.
func (c *Config) UseGoFonts() bool {
	return c.GoFonts == nil || *c.GoFonts
}

// Register loads every font file into lib. Relative paths are resolved
// against dir.
func (c *Config) Register(lib *library.Library, dir string) error {
	for _, f := range c.Fonts {
		v, ok := library.ParseVariant(f.Variant)
		if !ok {
			return fmt.Errorf("fontprobe: font %s: unknown variant %q", f.Path, f.Variant)
		}
		path := f.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		if _, err := lib.RegisterFile(f.Family, v, path); err != nil {
			return err
		}
	}
	return nil
}

// Descriptor resolves the probe to a descriptor. A shorthand takes
// precedence over settings.
func (p Probe) Descriptor() (fontinfo.Descriptor, error) {
	if p.Font != "" {
		return shorthand.Parse(p.Font)
	}
	return fontinfo.FromSettings(p.Settings), nil
}

// Label returns the probe name, or its shorthand form when unnamed.
func (p Probe) Label(d fontinfo.Descriptor) string {
	if p.Name != "" {
		return p.Name
	}
	return shorthand.Format(d)
}
