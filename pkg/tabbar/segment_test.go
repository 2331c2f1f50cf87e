package tabbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestEncodeTmux(t *testing.T) {
	segs := []Segment{
		{Bg: "#3498db", Fg: "#ffffff", Bold: true, Text: " 1"},
		{Bg: "#333333", Fg: "#3498db", Text: ""},
	}

	got := EncodeTmux(segs)
	want := "#[fg=#ffffff,bg=#3498db,bold] 1#[fg=#3498db,bg=#333333,nobold]#[default]"
	if got != want {
		t.Errorf("EncodeTmux() = %q, want %q", got, want)
	}
}

func TestEncodeTmux_EscapesHash(t *testing.T) {
	got := EncodeTmux([]Segment{{Text: "win #3"}})
	if !strings.Contains(got, "win ##3") {
		t.Errorf("EncodeTmux() = %q, want literal # doubled", got)
	}
}

func TestEncodeTmux_EmptyColorsMeanDefault(t *testing.T) {
	got := EncodeTmux([]Segment{{Text: "x"}})
	want := "#[fg=default,bg=default,nobold]x#[default]"
	if got != want {
		t.Errorf("EncodeTmux() = %q, want %q", got, want)
	}
}

func TestEncodeTmux_EndsWithReset(t *testing.T) {
	if got := EncodeTmux(nil); got != "#[default]" {
		t.Errorf("EncodeTmux(nil) = %q, want bare reset", got)
	}
}

func TestEncodeANSI(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	got := EncodeANSI([]Segment{{Bg: "#1a1a2e", Fg: "#ffffff", Bold: true, Text: "hi"}})

	if !strings.Contains(got, "hi") {
		t.Fatalf("EncodeANSI() = %q, want the text inside", got)
	}
	if !strings.Contains(got, "38;2;255;255;255") {
		t.Errorf("EncodeANSI() = %q, want a true color foreground sequence", got)
	}
	if !strings.Contains(got, "48;2;26;26;46") {
		t.Errorf("EncodeANSI() = %q, want a true color background sequence", got)
	}
}

func TestTotalWidth(t *testing.T) {
	segs := []Segment{
		{Text: " 1"},
		{Text: " 日本"},
	}
	if got := TotalWidth(segs); got != 7 {
		t.Errorf("TotalWidth() = %d, want 7", got)
	}
}

func TestMapColors(t *testing.T) {
	segs := []Segment{
		{Bg: "#1a1a2e", Fg: "#ffffff", Text: "a"},
		{Text: "b"},
	}

	upper := func(c string) string { return strings.ToUpper(c) }
	mapped := MapColors(segs, upper)

	if mapped[0].Bg != "#1A1A2E" {
		t.Errorf("mapped bg = %q, want uppercased", mapped[0].Bg)
	}
	if mapped[0].Fg != "#FFFFFF" {
		t.Errorf("mapped fg = %q, want uppercased", mapped[0].Fg)
	}
	if mapped[1].Bg != "" || mapped[1].Fg != "" {
		t.Error("empty colors must stay empty")
	}
	if segs[0].Fg != "#ffffff" {
		t.Error("original segments must not change")
	}
}
