// Package tabbar turns tabs and panes into powerline-styled draw segments.
// A Bar is bound to one merged configuration at setup time and formats
// tabs without touching any shared mutable state.
package tabbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Segment is one draw instruction: background, foreground, text intensity
// and the text run itself. Empty colors mean "terminal default".
type Segment struct {
	Bg   string
	Fg   string
	Bold bool
	Text string
}

// EncodeTmux renders segments as tmux status-line format directives,
// ending with a style reset. Literal '#' in text is escaped.
func EncodeTmux(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString("#[fg=")
		b.WriteString(tmuxColor(s.Fg))
		b.WriteString(",bg=")
		b.WriteString(tmuxColor(s.Bg))
		if s.Bold {
			b.WriteString(",bold")
		} else {
			b.WriteString(",nobold")
		}
		b.WriteString("]")
		b.WriteString(strings.ReplaceAll(s.Text, "#", "##"))
	}
	b.WriteString("#[default]")
	return b.String()
}

func tmuxColor(c string) string {
	if c == "" {
		return "default"
	}
	return c
}

// EncodeANSI renders segments with lipgloss for drawing directly into a
// terminal. Output depends on the active color profile; binaries force
// true color before calling this.
func EncodeANSI(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		style := lipgloss.NewStyle()
		if s.Fg != "" {
			style = style.Foreground(lipgloss.Color(s.Fg))
		}
		if s.Bg != "" {
			style = style.Background(lipgloss.Color(s.Bg))
		}
		if s.Bold {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(s.Text))
	}
	return b.String()
}

// TotalWidth returns the combined text width of segments in cells.
func TotalWidth(segs []Segment) int {
	width := 0
	for _, s := range segs {
		width += runewidth.StringWidth(s.Text)
	}
	return width
}

// MapColors returns a fresh segment list with every color passed through
// convert, for hosts that want palette colors instead of hex.
func MapColors(segs []Segment, convert func(string) string) []Segment {
	mapped := make([]Segment, len(segs))
	for i, s := range segs {
		if s.Fg != "" {
			s.Fg = convert(s.Fg)
		}
		if s.Bg != "" {
			s.Bg = convert(s.Bg)
		}
		mapped[i] = s
	}
	return mapped
}
