package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// SelectTab makes the given window the active one.
func SelectTab(id string) error {
	if err := exec.Command("tmux", "select-window", "-t", id).Run(); err != nil {
		return fmt.Errorf("tmux select-window failed: %w", err)
	}
	return nil
}

// Unzoom releases the zoomed pane of the given window. resize-pane -Z
// toggles, so call this only when the window is known to be zoomed.
func Unzoom(id string) error {
	if err := exec.Command("tmux", "resize-pane", "-Z", "-t", id).Run(); err != nil {
		return fmt.Errorf("tmux resize-pane failed: %w", err)
	}
	return nil
}

// SetBarPosition moves the tmux status line to the bottom or top.
func SetBarPosition(bottom bool) error {
	position := "top"
	if bottom {
		position = "bottom"
	}
	if err := exec.Command("tmux", "set-option", "-g", "status-position", position).Run(); err != nil {
		return fmt.Errorf("tmux set-option failed: %w", err)
	}
	return nil
}

// Width returns the drawable width in cells: the tmux client width when
// inside tmux, the terminal size otherwise, 80 as a last resort.
func Width() int {
	out, err := exec.Command("tmux", "display-message", "-p", "#{client_width}").Output()
	if err == nil {
		if w, err := strconv.Atoi(strings.TrimSpace(string(out))); err == nil && w > 0 {
			return w
		}
	}

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}

	return 80
}

// InsideTmux reports whether we are running under a tmux client.
func InsideTmux() bool {
	return os.Getenv("TMUX") != ""
}
