package colors

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// DetectDarkBackground reports whether the terminal background is dark.
// Checks the COLORFGBG environment variable first, then asks termenv
// (OSC query, does not work under tmux), and assumes dark otherwise.
func DetectDarkBackground() bool {
	if isDark, ok := checkCOLORFGBG(); ok {
		return isDark
	}
	if isDark, ok := checkTermenvBackground(); ok {
		return isDark
	}
	return true
}

// checkCOLORFGBG parses COLORFGBG ("foreground;background", ANSI color codes).
// Background values 0-7 are dark, 8-15 are light.
func checkCOLORFGBG() (bool, bool) {
	colorFGBG := os.Getenv("COLORFGBG")
	if colorFGBG == "" {
		return false, false
	}

	parts := strings.Split(colorFGBG, ";")
	if len(parts) < 2 {
		return false, false
	}

	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return false, false
	}

	return bg < 8 || bg == 16, true
}

// checkTermenvBackground queries the terminal background via termenv
func checkTermenvBackground() (bool, bool) {
	output := termenv.NewOutput(os.Stdout)

	bgColor := output.BackgroundColor()
	if bgColor == nil {
		return false, false
	}
	if _, ok := bgColor.(termenv.NoColor); ok {
		return false, false
	}

	return output.HasDarkBackground(), true
}
