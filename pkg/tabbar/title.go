package tabbar

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// UnknownProcess is the placeholder process name for empty titles.
const UnknownProcess = "unknown"

// Title is a tab label resolved from a raw pane title.
type Title struct {
	Process string // first whitespace token, UnknownProcess when empty
	Text    string // display text, truncated and padded with one space each side
}

// SplitTitle splits a title into its process name and optional custom
// suffix. The first whitespace-delimited token is the process; a standalone
// "-" after it starts the custom title. "nvim - notes" has process "nvim"
// and custom "notes"; "bash --login" has no custom title.
func SplitTitle(title string) (process, custom string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return UnknownProcess, ""
	}

	process = strings.Fields(title)[0]
	if idx := strings.Index(title, " - "); idx >= len(process) {
		custom = strings.TrimSpace(title[idx+3:])
	}
	return process, custom
}

// ResolveTitle derives the padded display label for a tab. A non-empty
// custom suffix replaces the shown text, otherwise the whole title shows.
// The text is truncated from the right to maxWidth-3 cells, leaving room
// for the index decoration, then wrapped in single spaces.
func ResolveTitle(raw string, maxWidth int) Title {
	process, custom := SplitTitle(raw)

	text := strings.TrimSpace(raw)
	if custom != "" {
		text = custom
	}

	limit := maxWidth - 3
	if limit < 0 {
		limit = 0
	}
	text = runewidth.Truncate(text, limit, "")

	return Title{
		Process: process,
		Text:    " " + text + " ",
	}
}
