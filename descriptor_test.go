package fontinfo

import (
	"math"
	"testing"
)

func TestDescriptorIDDeterministic(t *testing.T) {
	a := NewDescriptor("Mono", "normal", 14, 19)
	b := Descriptor{Family: "Mono", Weight: "normal", Size: 14, LineHeight: 19}
	if a.ID() != b.ID() {
		t.Errorf("equal descriptors have different IDs: %q vs %q", a.ID(), b.ID())
	}
	if got, want := a.ID(), "Mono|normal|14|19"; got != want {
		t.Errorf("ID() = %q, want %q", got, want)
	}
}

func TestDescriptorIDDistinct(t *testing.T) {
	base := NewDescriptor("Mono", "normal", 14, 19)
	tests := []struct {
		name string
		d    Descriptor
	}{
		{"family", NewDescriptor("Menlo", "normal", 14, 19)},
		{"weight", NewDescriptor("Mono", "bold", 14, 19)},
		{"size", NewDescriptor("Mono", "normal", 14.5, 19)},
		{"line height", NewDescriptor("Mono", "normal", 14, 20)},
		{"size and line height swapped", NewDescriptor("Mono", "normal", 19, 14)},
		{"separator in family", NewDescriptor("Mono|normal", "", 14, 19)},
		{"separator in weight", NewDescriptor("Mono", "normal|14", 14, 19)},
		{"escape in family", NewDescriptor(`Mono\`, "normal", 14, 19)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.d.ID() == base.ID() {
				t.Errorf("ID collision: %+v and %+v both map to %q", tt.d, base, base.ID())
			}
		})
	}
}

func TestDescriptorIDEscaping(t *testing.T) {
	a := NewDescriptor(`a|b`, "c", 1, 2)
	b := NewDescriptor(`a`, "b|c", 1, 2)
	if a.ID() == b.ID() {
		t.Errorf("escaped separators collide: %q", a.ID())
	}
	c := NewDescriptor(`a\`, "|b", 1, 2)
	d := NewDescriptor(`a\|`, "b", 1, 2)
	if c.ID() == d.ID() {
		t.Errorf("escape characters collide: %q", c.ID())
	}
}

func TestDescriptorComparable(t *testing.T) {
	seen := map[Descriptor]int{}
	seen[NewDescriptor("Mono", "normal", 14, 19)]++
	seen[NewDescriptor("Mono", "normal", 14, 19)]++
	if len(seen) != 1 {
		t.Errorf("expected descriptors to be comparable map keys, got %d keys", len(seen))
	}
}

func TestDescriptorIDNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	a := NewDescriptor("Mono", "normal", 0, 19)
	b := NewDescriptor("Mono", "normal", negZero, 19)
	c := NewDescriptor("Mono", "normal", 14, negZero)
	if a != b {
		t.Fatal("0 and -0 descriptors do not compare equal")
	}
	if a.ID() != b.ID() {
		t.Errorf("equal descriptors have different IDs: %q vs %q", a.ID(), b.ID())
	}
	if got, want := c.ID(), "Mono|normal|14|0"; got != want {
		t.Errorf("ID() = %q, want %q", got, want)
	}
}
