// Package icons holds the Nerd Font glyphs the tab bar draws with: the
// process icon table, powerline separators, the zoom marker and subscript
// digits for pane counts.
package icons

import "strings"

// Fallback is shown for processes without a configured icon.
const Fallback = "" // Nerd Font terminal prompt

// Zoom marks a tab whose active pane is zoomed.
const Zoom = "" // Nerd Font magnifier plus

// Powerline separators. Solid glyphs sit between adjacent tabs, thin ones
// divide the blocks inside a tab.
const (
	SeparatorRight     = "" // solid right-pointing arrow
	SeparatorRightThin = "" // thin right-pointing chevron
	SeparatorLeft      = "" // solid left-pointing arrow
	SeparatorLeftThin  = "" // thin left-pointing chevron
)

// Many stands in for pane counts past nine.
const Many = "₊" // subscript plus

var subscriptDigits = [9]string{
	"₁", // subscript one
	"₂",
	"₃",
	"₄",
	"₅",
	"₆",
	"₇",
	"₈",
	"₉", // subscript nine
}

// Subscript returns the subscript glyph for a pane count. Counts from one
// to nine get a dedicated digit, anything larger gets the Many glyph.
// Counts below one return an empty string.
func Subscript(n int) string {
	if n < 1 {
		return ""
	}
	if n > 9 {
		return Many
	}
	return subscriptDigits[n-1]
}

// DefaultProcessIcons returns a fresh copy of the built-in process icon
// table. Callers merge user entries into the returned map.
func DefaultProcessIcons() map[string]string {
	return map[string]string{
		"bash":    "", // terminal
		"zsh":     "",
		"fish":    "",
		"sh":      "",
		"vim":     "", // vim logo
		"nvim":    "",
		"emacs":   "", // emacs logo
		"git":     "", // git logo
		"go":      "", // gopher
		"node":    "", // hexagon
		"python":  "", // snakes
		"python3": "",
		"ruby":    "", // gem
		"cargo":   "", // rust gear
		"docker":  "", // whale
		"ssh":     "", // server rack
		"mosh":    "",
		"htop":    "", // gauge
		"top":     "",
		"less":    "", // book
		"man":     "",
		"make":    "", // wrench
		"psql":    "", // database drum
		"mysql":   "",
		"sqlite3": "",
	}
}

// Lookup resolves a process name against an icon table, case-insensitively.
// Unknown or empty names get the Fallback glyph.
func Lookup(table map[string]string, process string) string {
	if icon, ok := table[strings.ToLower(process)]; ok {
		return icon
	}
	return Fallback
}
