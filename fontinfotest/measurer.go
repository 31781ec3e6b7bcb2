package fontinfotest

import (
	"sync"

	"github.com/gogpu/fontinfo"
)

// TableMeasurer returns a fixed width per character, with optional
// per-style overrides. Characters without an entry measure the default width.
type TableMeasurer struct {
	mu     sync.Mutex
	def    float64
	widths map[string]float64
	styled map[fontinfo.Style]map[string]float64
	calls  int
}

// NewTableMeasurer returns a measurer that reports def for every character.
func NewTableMeasurer(def float64) *TableMeasurer {
	return &TableMeasurer{
		def:    def,
		widths: make(map[string]float64),
		styled: make(map[fontinfo.Style]map[string]float64),
	}
}

// Set overrides the width of ch in every style.
func (m *TableMeasurer) Set(ch string, w float64) *TableMeasurer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.widths[ch] = w
	return m
}

// SetStyled overrides the width of ch in one style only.
func (m *TableMeasurer) SetStyled(ch string, style fontinfo.Style, w float64) *TableMeasurer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.styled[style] == nil {
		m.styled[style] = make(map[string]float64)
	}
	m.styled[style][ch] = w
	return m
}

// SetDefault changes the width reported for characters without an entry.
func (m *TableMeasurer) SetDefault(w float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.def = w
}

// Reset drops all overrides.
func (m *TableMeasurer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.widths = make(map[string]float64)
	m.styled = make(map[fontinfo.Style]map[string]float64)
}

// Measure implements fontinfo.TextMeasurer.
func (m *TableMeasurer) Measure(ch string, style fontinfo.Style, _ fontinfo.Descriptor) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if w, ok := m.styled[style][ch]; ok {
		return w
	}
	if w, ok := m.widths[ch]; ok {
		return w
	}
	return m.def
}

// Calls returns the number of Measure calls so far.
func (m *TableMeasurer) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LoadingMeasurer simulates a font that is still loading for the first
// few measurement runs. A run starts with the normal-style measurement of
// 'n', which fontinfo.Measure always performs first. During the first
// rounds runs every character measures unloaded; later runs delegate to
// inner. A negative rounds never loads on its own; call Load.
type LoadingMeasurer struct {
	mu       sync.Mutex
	inner    fontinfo.TextMeasurer
	unloaded float64
	rounds   int
	runs     int
	loaded   bool
}

// NewLoadingMeasurer wraps inner.
func NewLoadingMeasurer(inner fontinfo.TextMeasurer, unloaded float64, rounds int) *LoadingMeasurer {
	return &LoadingMeasurer{inner: inner, unloaded: unloaded, rounds: rounds}
}

// Load marks the font as loaded.
func (m *LoadingMeasurer) Load() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaded = true
}

// Runs returns the number of measurement runs seen so far.
func (m *LoadingMeasurer) Runs() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runs
}

// Measure implements fontinfo.TextMeasurer.
func (m *LoadingMeasurer) Measure(ch string, style fontinfo.Style, d fontinfo.Descriptor) float64 {
	m.mu.Lock()
	if ch == "n" && style == fontinfo.StyleNormal {
		m.runs++
		if m.rounds >= 0 && m.runs > m.rounds {
			m.loaded = true
		}
	}
	loaded := m.loaded
	m.mu.Unlock()

	if !loaded {
		return m.unloaded
	}
	return m.inner.Measure(ch, style, d)
}
