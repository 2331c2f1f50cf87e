package config

import (
	"github.com/b/tabline/pkg/icons"
)

// Zoom indicator display styles.
const (
	ZoomStyleIcon   = "icon"   // zoom glyph replaces the tab index
	ZoomStyleNumber = "number" // zoom glyph plus subscript pane count
)

// Config is the effective tab bar configuration: built once from Default,
// merged once with user overrides at setup time, read-only afterwards.
type Config struct {
	BarAtBottom    bool              `yaml:"bar_at_bottom"`
	HideWhenSingle bool              `yaml:"hide_when_single"`
	MaxTabWidth    int               `yaml:"max_tab_width"`
	UnzoomOnSwitch bool              `yaml:"unzoom_on_switch"`
	Scheme         string            `yaml:"scheme"`
	Separators     Separators        `yaml:"separators"`
	ProcessIcons   map[string]string `yaml:"process_icons"`
	ZoomIndicator  ZoomIndicator     `yaml:"zoom_indicator"`
}

// Separators are the four powerline glyphs drawn between and inside tabs.
type Separators struct {
	Left      string `yaml:"left"`       // solid, points left
	LeftThin  string `yaml:"left_thin"`  // thin, divides blocks inside a tab
	Right     string `yaml:"right"`      // solid, points right, drawn between tabs
	RightThin string `yaml:"right_thin"` // thin, divides same-colored neighbors
}

// ZoomIndicator controls how a zoomed pane shows up in the tab index.
type ZoomIndicator struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // ZoomStyleIcon or ZoomStyleNumber
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BarAtBottom:    true,
		HideWhenSingle: false,
		MaxTabWidth:    32,
		UnzoomOnSwitch: false,
		Scheme:         "dark",
		Separators: Separators{
			Left:      icons.SeparatorLeft,
			LeftThin:  icons.SeparatorLeftThin,
			Right:     icons.SeparatorRight,
			RightThin: icons.SeparatorRightThin,
		},
		ProcessIcons: icons.DefaultProcessIcons(),
		ZoomIndicator: ZoomIndicator{
			Enabled: true,
			Style:   ZoomStyleIcon,
		},
	}
}
