// Package tmux adapts the local tmux server into the tab bar's host model:
// windows become tabs, panes keep their zoom state, and titles arrive
// stripped of ANSI noise.
package tmux

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// ansiEscapeRegex matches ANSI escape sequences
var ansiEscapeRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]|\x1b\].*?(?:\x07|\x1b\\)`)

// stripANSI removes ANSI escape sequences from a string
func stripANSI(s string) string {
	return ansiEscapeRegex.ReplaceAllString(s, "")
}

// Tab is one tmux window as the bar sees it.
type Tab struct {
	ID     string
	Index  int
	Name   string
	Active bool
	Zoomed bool // window has a zoomed pane
}

// Pane is one terminal surface inside a tab. Zoomed is set on the pane
// currently occupying the whole tab, which tmux only allows for the
// active pane.
type Pane struct {
	ID      string
	Index   int
	Active  bool
	Command string // current command running in the pane
	Title   string // pane title if set
	Zoomed  bool
}

const tabFormat = "#{window_id}\x1f#{window_index}\x1f#{window_name}\x1f#{window_active}\x1f#{window_zoomed_flag}"

const paneFormat = "#{pane_id}\x1f#{pane_index}\x1f#{pane_active}\x1f#{pane_current_command}\x1f#{pane_title}\x1f#{window_zoomed_flag}"

// ListTabs returns the current session's windows in index order.
func ListTabs() ([]Tab, error) {
	cmd := exec.Command("tmux", "list-windows", "-F", tabFormat)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("tmux list-windows failed: %w", err)
	}
	return parseTabs(string(out)), nil
}

// ListPanes returns the panes of one tab, freshly queried. The bar's own
// pane is filtered out so it never counts toward pane totals.
func ListPanes(tabIndex int) ([]Pane, error) {
	cmd := exec.Command("tmux", "list-panes", "-t", fmt.Sprintf(":%d", tabIndex), "-F", paneFormat)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("tmux list-panes failed: %w", err)
	}
	return parsePanes(string(out)), nil
}

func parseTabs(out string) []Tab {
	var tabs []Tab
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\x1f")
		if len(parts) < 5 {
			continue
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		tabs = append(tabs, Tab{
			ID:     parts[0],
			Index:  index,
			Name:   stripANSI(parts[2]),
			Active: parts[3] == "1",
			Zoomed: parts[4] == "1",
		})
	}
	return tabs
}

func parsePanes(out string) []Pane {
	var panes []Pane
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\x1f")
		if len(parts) < 6 {
			continue
		}
		index, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		command := stripANSI(parts[3])
		// Skip the bar's own pane
		if command == "tabline-bar" {
			continue
		}
		active := parts[2] == "1"
		panes = append(panes, Pane{
			ID:      parts[0],
			Index:   index,
			Active:  active,
			Command: command,
			Title:   stripANSI(parts[4]),
			// tmux zooms the active pane, so the window flag marks it
			Zoomed: active && parts[5] == "1",
		})
	}
	return panes
}
