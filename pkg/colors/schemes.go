package colors

// Scheme is a complete color scheme for the tab bar. Empty fields mean
// "terminal default" and survive Normalized untouched unless the paired
// background is known.
type Scheme struct {
	Name        string
	Description string
	Dark        bool // Is this a dark scheme?

	// Bar
	BarBg string // base background the last separator telescopes into

	// Tabs
	ActiveBg   string
	ActiveFg   string
	InactiveBg string
	InactiveFg string

	// Accents inside a tab block
	DividerFg string // thin separator between the index block and the title
	ZoomFg    string // zoom glyph tint
}

// Built-in schemes
var Schemes = map[string]Scheme{
	"rose-pine": {
		Name:        "Rose Pine",
		Description: "Elegant dark scheme with muted colors",
		Dark:        true,

		BarBg:      "#191724",
		ActiveBg:   "#31748f",
		ActiveFg:   "#e0def4",
		InactiveBg: "#26233a",
		InactiveFg: "#908caa",
		DividerFg:  "#403d52",
		ZoomFg:     "#ebbcba",
	},

	"catppuccin-mocha": {
		Name:        "Catppuccin Mocha",
		Description: "Soothing dark scheme",
		Dark:        true,

		BarBg:      "#1e1e2e",
		ActiveBg:   "#89b4fa",
		ActiveFg:   "#1e1e2e",
		InactiveBg: "#313244",
		InactiveFg: "#9399b2",
		DividerFg:  "#45475a",
		ZoomFg:     "#f38ba8",
	},

	"catppuccin-latte": {
		Name:        "Catppuccin Latte",
		Description: "Light pastel scheme",
		Dark:        false,

		BarBg:      "#eff1f5",
		ActiveBg:   "#1e66f5",
		ActiveFg:   "#eff1f5",
		InactiveBg: "#dce0e8",
		InactiveFg: "#6c6f85",
		DividerFg:  "#bcc0cc",
		ZoomFg:     "#d20f39",
	},

	"dracula": {
		Name:        "Dracula",
		Description: "Dark scheme with vibrant colors",
		Dark:        true,

		BarBg:      "#282a36",
		ActiveBg:   "#bd93f9",
		ActiveFg:   "#282a36",
		InactiveBg: "#44475a",
		InactiveFg: "#f8f8f2",
		DividerFg:  "#6272a4",
		ZoomFg:     "#50fa7b",
	},

	"nord": {
		Name:        "Nord",
		Description: "Arctic, north-bluish color palette",
		Dark:        true,

		BarBg:      "#2e3440",
		ActiveBg:   "#88c0d0",
		ActiveFg:   "#2e3440",
		InactiveBg: "#3b4252",
		InactiveFg: "#d8dee9",
		DividerFg:  "#4c566a",
		ZoomFg:     "#bf616a",
	},

	"solarized-dark": {
		Name:        "Solarized Dark",
		Description: "Precision colors for machines and people",
		Dark:        true,

		BarBg:      "#002b36",
		ActiveBg:   "#268bd2",
		ActiveFg:   "#fdf6e3",
		InactiveBg: "#073642",
		InactiveFg: "#839496",
		DividerFg:  "#586e75",
		ZoomFg:     "#cb4b16",
	},

	"gruvbox-dark": {
		Name:        "Gruvbox Dark",
		Description: "Retro groove color scheme",
		Dark:        true,

		BarBg:      "#282828",
		ActiveBg:   "#83a598",
		ActiveFg:   "#282828",
		InactiveBg: "#3c3836",
		InactiveFg: "#a89984",
		DividerFg:  "#504945",
		ZoomFg:     "#fb4934",
	},

	"tokyo-night": {
		Name:        "Tokyo Night",
		Description: "A dark scheme inspired by Tokyo at night",
		Dark:        true,

		BarBg:      "#1a1b26",
		ActiveBg:   "#7aa2f7",
		ActiveFg:   "#1a1b26",
		InactiveBg: "#24283b",
		InactiveFg: "#9aa5ce",
		DividerFg:  "#414868",
		ZoomFg:     "#f7768e",
	},

	"one-dark": {
		Name:        "One Dark",
		Description: "Atom's iconic dark theme",
		Dark:        true,

		BarBg:      "#282c34",
		ActiveBg:   "#61afef",
		ActiveFg:   "#282c34",
		InactiveBg: "#3e4451",
		InactiveFg: "#abb2bf",
		DividerFg:  "#5c6370",
		ZoomFg:     "#e06c75",
	},

	// Transparent scheme that respects terminal colors
	"default": {
		Name:        "Default",
		Description: "Uses terminal default colors (transparent)",
		Dark:        true, // Assumption, mostly for contrast calculation

		BarBg:      "", // Transparent
		ActiveBg:   "",
		ActiveFg:   "",
		InactiveBg: "",
		InactiveFg: "",
		DividerFg:  "",
		ZoomFg:     "",
	},

	// Default dark scheme
	"dark": {
		Name:        "Dark",
		Description: "Default dark scheme",
		Dark:        true,

		BarBg:      "#1a1a2e",
		ActiveBg:   "#3498db",
		ActiveFg:   "#ffffff",
		InactiveBg: "#333333",
		InactiveFg: "#cccccc",
		DividerFg:  "#888888",
		ZoomFg:     "#26c6da",
	},
}

// GetScheme returns a scheme by name, or the default dark scheme if not found.
// The name "auto" picks between the dark and light defaults based on the
// detected terminal background.
func GetScheme(name string) Scheme {
	if name == "auto" {
		if DetectDarkBackground() {
			return Schemes["dark"]
		}
		return Schemes["catppuccin-latte"]
	}
	if scheme, ok := Schemes[name]; ok {
		return scheme
	}
	return Schemes["dark"]
}

// ListSchemes returns all available scheme names
func ListSchemes() []string {
	names := make([]string, 0, len(Schemes))
	for name := range Schemes {
		names = append(names, name)
	}
	return names
}

// Normalized returns a copy with missing foregrounds derived from their
// backgrounds and every foreground bumped to at least WCAG AA contrast.
// Fields whose backgrounds are themselves empty (transparent schemes) are
// left alone, there is nothing to contrast against.
func (s Scheme) Normalized() Scheme {
	if s.ActiveBg != "" {
		if s.ActiveFg == "" {
			s.ActiveFg = DeriveTextColor(s.ActiveBg)
		}
		s.ActiveFg = EnsureContrast(s.ActiveFg, s.ActiveBg, 4.5)
	}
	if s.InactiveBg != "" {
		if s.InactiveFg == "" {
			s.InactiveFg = DeriveTextColor(s.InactiveBg)
		}
		s.InactiveFg = EnsureContrast(s.InactiveFg, s.InactiveBg, 3.0)
		if s.DividerFg == "" {
			s.DividerFg = AdjustHex(s.InactiveBg, 0.25)
		}
	}
	if s.ZoomFg == "" {
		s.ZoomFg = s.ActiveFg
	}
	return s
}
