package fontinfo

import (
	"errors"
	"math"
	"testing"
)

func TestFromSettings(t *testing.T) {
	linux := defaultsFor("linux")
	mac := defaultsFor("darwin")

	tests := []struct {
		name string
		s    Settings
		def  platformDefaults
		want Descriptor
	}{
		{
			name: "defaults linux",
			def:  linux,
			want: Descriptor{Family: linux.family, Weight: "normal", Size: 14, LineHeight: 19},
		},
		{
			name: "defaults darwin",
			def:  mac,
			want: Descriptor{Family: mac.family, Weight: "normal", Size: 12, LineHeight: 18},
		},
		{
			name: "explicit values",
			s:    Settings{FontFamily: " Fira Code ", FontWeight: "600", FontSize: 16, LineHeight: 24},
			def:  linux,
			want: Descriptor{Family: "Fira Code", Weight: "600", Size: 16, LineHeight: 24},
		},
		{
			name: "line height multiplier",
			s:    Settings{FontSize: 10, LineHeight: 1.5},
			def:  linux,
			want: Descriptor{Family: linux.family, Weight: "normal", Size: 10, LineHeight: 15},
		},
		{
			name: "clamped size and line height",
			s:    Settings{FontSize: 500, LineHeight: 1000},
			def:  linux,
			want: Descriptor{Family: linux.family, Weight: "normal", Size: 100, LineHeight: 150},
		},
		{
			name: "tiny size",
			s:    Settings{FontSize: 2},
			def:  linux,
			want: Descriptor{Family: linux.family, Weight: "normal", Size: 6, LineHeight: 8},
		},
		{
			name: "invalid weight",
			s:    Settings{FontWeight: "heavy", FontSize: 14},
			def:  linux,
			want: Descriptor{Family: linux.family, Weight: "normal", Size: 14, LineHeight: 19},
		},
		{
			name: "zoom",
			s:    Settings{FontSize: 10, ZoomLevel: 2},
			def:  linux,
			want: Descriptor{Family: linux.family, Weight: "normal", Size: 12, LineHeight: 16},
		},
		{
			name: "nan size",
			s:    Settings{FontSize: math.NaN()},
			def:  linux,
			want: Descriptor{Family: linux.family, Weight: "normal", Size: 14, LineHeight: 19},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromSettings(tt.s, tt.def)
			if got.Family != tt.want.Family || got.Weight != tt.want.Weight ||
				math.Abs(got.Size-tt.want.Size) > 1e-9 || got.LineHeight != tt.want.LineHeight {
				t.Errorf("fromSettings(%+v) = %+v, want %+v", tt.s, got, tt.want)
			}
		})
	}
}

func TestFromSettingsUsesPlatform(t *testing.T) {
	d := FromSettings(Settings{})
	if d.Family == "" || d.Weight != "normal" || d.Size < MinFontSize || d.LineHeight < MinLineHeight {
		t.Errorf("FromSettings(zero) = %+v, want platform defaults", d)
	}
}

func TestParseWeight(t *testing.T) {
	valid := map[string]string{
		"":       "normal",
		"normal": "normal",
		"BOLD":   "bold",
		" 400 ":  "400",
		"900":    "900",
	}
	for in, want := range valid {
		got, err := ParseWeight(in)
		if err != nil || got != want {
			t.Errorf("ParseWeight(%q) = %q, %v; want %q, nil", in, got, err, want)
		}
	}

	for _, in := range []string{"0", "950", "450", "bolder", "x"} {
		_, err := ParseWeight(in)
		if !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("ParseWeight(%q) error = %v, want ErrInvalidWeight", in, err)
		}
		var se *SettingError
		if !errors.As(err, &se) || se.Setting != "fontWeight" {
			t.Errorf("ParseWeight(%q) error = %v, want *SettingError for fontWeight", in, err)
		}
	}
}
