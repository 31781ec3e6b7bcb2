package fontinfo

import (
	"math"
	"testing"
)

func validMetrics() Metrics {
	return Metrics{
		Family:                         "Mono",
		Weight:                         "normal",
		Size:                           14,
		LineHeight:                     19,
		IsMonospace:                    true,
		TypicalHalfwidthCharacterWidth: 7,
		TypicalFullwidthCharacterWidth: 14,
		SpaceWidth:                     7,
		MaxDigitWidth:                  7,
		MiddotWidth:                    7,
		WSMiddotWidth:                  7,
	}
}

func TestIsDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Metrics)
		want    bool
		recheck bool
	}{
		{"valid", func(*Metrics) {}, false, false},
		{"halfwidth", func(m *Metrics) { m.TypicalHalfwidthCharacterWidth = 2 }, true, true},
		{"fullwidth", func(m *Metrics) { m.TypicalFullwidthCharacterWidth = 0 }, true, true},
		{"space", func(m *Metrics) { m.SpaceWidth = 1.5 }, true, false},
		{"max digit", func(m *Metrics) { m.MaxDigitWidth = 2 }, true, true},
		{"just above threshold", func(m *Metrics) { m.SpaceWidth = 2.01 }, false, false},
		{"middot ignored", func(m *Metrics) { m.MiddotWidth = 0 }, false, false},
		{"NaN halfwidth", func(m *Metrics) { m.TypicalHalfwidthCharacterWidth = math.NaN() }, true, true},
		{"NaN space", func(m *Metrics) { m.SpaceWidth = math.NaN() }, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetrics()
			tt.mutate(&m)
			if got := m.IsDegenerate(); got != tt.want {
				t.Errorf("IsDegenerate() = %v, want %v", got, tt.want)
			}
			// The monitor re-check ignores SpaceWidth.
			if got := m.needsRemeasure(); got != tt.recheck {
				t.Errorf("needsRemeasure() = %v, want %v", got, tt.recheck)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	m := validMetrics()
	m.TypicalHalfwidthCharacterWidth = 1
	m.SpaceWidth = 0
	m.MiddotWidth = 0.5
	m.IsMonospace = false

	c := m.Clamp()
	if c.TypicalHalfwidthCharacterWidth != 5 || c.SpaceWidth != 5 {
		t.Errorf("degenerate widths not clamped to 5: %+v", c)
	}
	if c.TypicalFullwidthCharacterWidth != 14 || c.MaxDigitWidth != 7 {
		t.Errorf("valid widths changed by Clamp: %+v", c)
	}
	if c.MiddotWidth != 0.5 || c.IsMonospace || c.Descriptor() != m.Descriptor() {
		t.Errorf("non-width fields changed by Clamp: %+v", c)
	}
	if c.IsDegenerate() {
		t.Error("clamped metrics are still degenerate")
	}

	// Widths between 2 and 5 are raised as well.
	m = validMetrics()
	m.MaxDigitWidth = 3
	if got := m.Clamp().MaxDigitWidth; got != 5 {
		t.Errorf("Clamp().MaxDigitWidth = %v, want 5", got)
	}
}

func TestClampNaN(t *testing.T) {
	nan := math.NaN()
	m := Metrics{
		TypicalHalfwidthCharacterWidth: nan,
		TypicalFullwidthCharacterWidth: nan,
		SpaceWidth:                     nan,
		MaxDigitWidth:                  nan,
	}
	if !m.IsDegenerate() {
		t.Fatal("all-NaN metrics not degenerate")
	}
	c := m.Clamp()
	if c.TypicalHalfwidthCharacterWidth != 5 || c.TypicalFullwidthCharacterWidth != 5 ||
		c.SpaceWidth != 5 || c.MaxDigitWidth != 5 {
		t.Errorf("Clamp() of NaN widths = %+v, want all 5", c)
	}
	if c.IsDegenerate() {
		t.Error("clamped NaN metrics are still degenerate")
	}
}

func TestTextWidth(t *testing.T) {
	m := validMetrics()
	m.SpaceWidth = 6

	tests := []struct {
		name string
		s    string
		tab  int
		want float64
	}{
		{"empty", "", 4, 0},
		{"ascii", "abc", 4, 21},
		{"space", "a b", 4, 20},
		{"fullwidth", "日本", 4, 28},
		{"mixed", "a日", 4, 21},
		{"combining", "é", 4, 7},
		{"tab from column 0", "\tx", 4, 35},
		{"tab from column 1", "a\tx", 4, 35},
		{"tab size 2", "a\tx", 2, 21},
		{"default tab size", "\t", 0, 28},
		{"newline", "a\nb", 4, 14},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.TextWidth(tt.s, tt.tab); got != tt.want {
				t.Errorf("TextWidth(%q, %d) = %v, want %v", tt.s, tt.tab, got, tt.want)
			}
		})
	}
}

func TestColumns(t *testing.T) {
	m := validMetrics()
	tests := []struct {
		px   float64
		want int
	}{
		{0, 0}, {6.9, 0}, {7, 1}, {21, 3}, {20.9, 2}, {70, 10},
	}
	for _, tt := range tests {
		if got := m.Columns(tt.px); got != tt.want {
			t.Errorf("Columns(%v) = %d, want %d", tt.px, got, tt.want)
		}
	}
	if (Metrics{}).Columns(100) != 0 {
		t.Error("Columns on zero metrics should be 0")
	}
}

func TestMetricsEqual(t *testing.T) {
	a, b := validMetrics(), validMetrics()
	if !a.Equal(b) {
		t.Error("identical metrics not Equal")
	}
	b.SpaceWidth++
	if a.Equal(b) {
		t.Error("different metrics reported Equal")
	}
}
