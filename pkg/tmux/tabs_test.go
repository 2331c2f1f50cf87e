package tmux

import (
	"testing"
)

func TestParseTabs(t *testing.T) {
	out := "@1\x1f1\x1fvim\x1f1\x1f0\n" +
		"@2\x1f2\x1fbash\x1f0\x1f1\n" +
		"\n"

	tabs := parseTabs(out)
	if len(tabs) != 2 {
		t.Fatalf("parsed %d tabs, want 2", len(tabs))
	}

	first := tabs[0]
	if first.ID != "@1" || first.Index != 1 || first.Name != "vim" {
		t.Errorf("first tab = %+v", first)
	}
	if !first.Active || first.Zoomed {
		t.Errorf("first tab flags = active %v zoomed %v", first.Active, first.Zoomed)
	}

	second := tabs[1]
	if second.Active || !second.Zoomed {
		t.Errorf("second tab flags = active %v zoomed %v", second.Active, second.Zoomed)
	}
}

func TestParseTabs_Malformed(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want int
	}{
		{"empty output", "", 0},
		{"short line dropped", "@1\x1f1\x1fvim\n", 0},
		{"bad index dropped", "@1\x1fxx\x1fvim\x1f1\x1f0\n", 0},
		{"good line survives neighbors", "@1\x1fxx\x1fvim\x1f1\x1f0\n@2\x1f2\x1fgit\x1f0\x1f0\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseTabs(tt.out); len(got) != tt.want {
				t.Errorf("parsed %d tabs, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParseTabs_StripsANSI(t *testing.T) {
	out := "@1\x1f1\x1f\x1b[31mvim\x1b[0m\x1f1\x1f0\n"

	tabs := parseTabs(out)
	if len(tabs) != 1 {
		t.Fatalf("parsed %d tabs, want 1", len(tabs))
	}
	if tabs[0].Name != "vim" {
		t.Errorf("name = %q, want ANSI stripped to vim", tabs[0].Name)
	}
}

func TestParsePanes(t *testing.T) {
	out := "%1\x1f0\x1f1\x1fnvim\x1fnvim - notes.md\x1f1\n" +
		"%2\x1f1\x1f0\x1fbash\x1f\x1f1\n"

	panes := parsePanes(out)
	if len(panes) != 2 {
		t.Fatalf("parsed %d panes, want 2", len(panes))
	}

	// The window is zoomed, only the active pane carries the flag
	if !panes[0].Zoomed {
		t.Error("active pane in zoomed window should be zoomed")
	}
	if panes[1].Zoomed {
		t.Error("inactive pane must never be zoomed")
	}
	if panes[0].Command != "nvim" || panes[0].Title != "nvim - notes.md" {
		t.Errorf("pane fields = %+v", panes[0])
	}
}

func TestParsePanes_SkipsBarPane(t *testing.T) {
	out := "%1\x1f0\x1f1\x1fbash\x1f\x1f0\n" +
		"%9\x1f1\x1f0\x1ftabline-bar\x1f\x1f0\n"

	panes := parsePanes(out)
	if len(panes) != 1 {
		t.Fatalf("parsed %d panes, want 1 (bar pane skipped)", len(panes))
	}
	if panes[0].Command != "bash" {
		t.Errorf("surviving pane = %+v", panes[0])
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello", "hello"},
		{"color codes", "\x1b[31mred\x1b[0m", "red"},
		{"osc title", "\x1b]0;title\x07rest", "rest"},
		{"mixed", "a\x1b[1mb\x1b[0mc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripANSI(tt.input); got != tt.want {
				t.Errorf("stripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
