package colors

import (
	"math"
	"testing"
)

func TestGetLuminance(t *testing.T) {
	tests := []struct {
		name     string
		hexColor string
		want     float64
		delta    float64 // acceptable deviation
	}{
		{"black", "#000000", 0.0, 0.001},
		{"white", "#ffffff", 1.0, 0.001},
		{"mid gray", "#808080", 0.2159, 0.01}, // ~21.6% luminance
		{"pure red", "#ff0000", 0.2126, 0.01},
		{"pure green", "#00ff00", 0.7152, 0.01},
		{"pure blue", "#0000ff", 0.0722, 0.01},
		{"invalid color", "not-a-color", 0.0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetLuminance(tt.hexColor)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("GetLuminance(%q) = %v, want %v (delta %v)", tt.hexColor, got, tt.want, tt.delta)
			}
		})
	}
}

func TestGetContrastRatio(t *testing.T) {
	tests := []struct {
		name  string
		fg    string
		bg    string
		want  float64
		delta float64
	}{
		{"black on white (max contrast)", "#000000", "#ffffff", 21.0, 0.1},
		{"white on black (max contrast)", "#ffffff", "#000000", 21.0, 0.1},
		{"same color (no contrast)", "#808080", "#808080", 1.0, 0.1},
		{"white on mid gray", "#ffffff", "#808080", 4.0, 0.5}, // ~4:1
		{"black on mid gray", "#000000", "#808080", 5.3, 0.5}, // ~5.3:1
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetContrastRatio(tt.fg, tt.bg)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("GetContrastRatio(%q, %q) = %v, want %v (delta %v)", tt.fg, tt.bg, got, tt.want, tt.delta)
			}
		})
	}
}

func TestDeriveTextColor(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		want string
	}{
		{"dark background gets white", "#1a1a2e", "#ffffff"},
		{"light background gets black", "#faf4ed", "#000000"},
		{"saturated blue gets white", "#3498db", "#ffffff"},
		{"pale yellow gets black", "#f1fa8c", "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveTextColor(tt.bg); got != tt.want {
				t.Errorf("DeriveTextColor(%q) = %q, want %q", tt.bg, got, tt.want)
			}
		})
	}
}

func TestEnsureContrast(t *testing.T) {
	tests := []struct {
		name     string
		fg, bg   string
		minRatio float64
	}{
		{"already sufficient", "#ffffff", "#1a1a2e", 4.5},
		{"dim gray on dark", "#444444", "#333333", 4.5},
		{"light on light", "#eeeeee", "#ffffff", 4.5},
		{"aaa on dark navy", "#888888", "#1a1a2e", 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnsureContrast(tt.fg, tt.bg, tt.minRatio)
			if ratio := GetContrastRatio(got, tt.bg); ratio < tt.minRatio {
				t.Errorf("EnsureContrast(%q, %q, %v) = %q with ratio %v, want >= %v",
					tt.fg, tt.bg, tt.minRatio, got, ratio, tt.minRatio)
			}
		})
	}

	// A color that already passes comes back untouched
	if got := EnsureContrast("#ffffff", "#000000", 4.5); got != "#ffffff" {
		t.Errorf("passing color was modified: %q", got)
	}
}

func TestGetScheme(t *testing.T) {
	if got := GetScheme("dracula"); got.Name != "Dracula" {
		t.Errorf("GetScheme(dracula).Name = %q", got.Name)
	}

	// Unknown names fall back to the dark default
	if got := GetScheme("no-such-scheme"); got.Name != "Dark" {
		t.Errorf("unknown scheme fell back to %q, want Dark", got.Name)
	}

	t.Run("auto respects COLORFGBG", func(t *testing.T) {
		t.Setenv("COLORFGBG", "0;15")
		if got := GetScheme("auto"); got.Dark {
			t.Errorf("light COLORFGBG resolved to dark scheme %q", got.Name)
		}

		t.Setenv("COLORFGBG", "15;0")
		if got := GetScheme("auto"); !got.Dark {
			t.Errorf("dark COLORFGBG resolved to light scheme %q", got.Name)
		}
	})
}

func TestSchemeNormalized(t *testing.T) {
	t.Run("fills missing foregrounds", func(t *testing.T) {
		s := Scheme{
			BarBg:      "#1a1a2e",
			ActiveBg:   "#2e3440",
			InactiveBg: "#333333",
		}.Normalized()

		if s.ActiveFg == "" {
			t.Error("ActiveFg not derived")
		}
		if s.InactiveFg == "" {
			t.Error("InactiveFg not derived")
		}
		if s.DividerFg == "" {
			t.Error("DividerFg not derived")
		}
		if got := GetContrastRatio(s.ActiveFg, s.ActiveBg); got < 4.5 {
			t.Errorf("derived ActiveFg contrast = %v, want >= 4.5", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := GetScheme("nord").Normalized()
		twice := once.Normalized()
		if once != twice {
			t.Errorf("Normalized not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
		}
	})

	t.Run("transparent scheme untouched", func(t *testing.T) {
		s := GetScheme("default").Normalized()
		if s.ActiveBg != "" || s.ActiveFg != "" || s.InactiveFg != "" {
			t.Errorf("transparent scheme gained colors: %+v", s)
		}
	})
}

func TestHexToTmuxColor(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want string
	}{
		{"black", "#000000", "colour16"},
		{"white", "#ffffff", "colour231"},
		{"invalid", "nope", "colour0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToTmuxColor(tt.hex); got != tt.want {
				t.Errorf("HexToTmuxColor(%q) = %q, want %q", tt.hex, got, tt.want)
			}
		})
	}
}

func TestAdjustHex(t *testing.T) {
	if got := AdjustHex("#808080", 0.25); got != "#bfbfbf" {
		t.Errorf("AdjustHex lighten = %q, want #bfbfbf", got)
	}
	if got := AdjustHex("#808080", -0.25); got != "#404040" {
		t.Errorf("AdjustHex darken = %q, want #404040", got)
	}
	// Invalid input passes through
	if got := AdjustHex("xyz", 0.5); got != "xyz" {
		t.Errorf("AdjustHex(invalid) = %q, want passthrough", got)
	}
}
