package config

import (
	"fmt"
)

// Overrides mirrors Config with every scalar optional. Nil fields leave the
// base value alone; map entries overwrite matching keys and add new ones.
type Overrides struct {
	BarAtBottom    *bool                   `yaml:"bar_at_bottom"`
	HideWhenSingle *bool                   `yaml:"hide_when_single"`
	MaxTabWidth    *int                    `yaml:"max_tab_width"`
	UnzoomOnSwitch *bool                   `yaml:"unzoom_on_switch"`
	Scheme         *string                 `yaml:"scheme"`
	Separators     *SeparatorOverrides     `yaml:"separators"`
	ProcessIcons   map[string]string       `yaml:"process_icons"`
	ZoomIndicator  *ZoomIndicatorOverrides `yaml:"zoom_indicator"`
}

type SeparatorOverrides struct {
	Left      *string `yaml:"left"`
	LeftThin  *string `yaml:"left_thin"`
	Right     *string `yaml:"right"`
	RightThin *string `yaml:"right_thin"`
}

type ZoomIndicatorOverrides struct {
	Enabled *bool   `yaml:"enabled"`
	Style   *string `yaml:"style"`
}

// Validate rejects override values no merged configuration could hold.
func (o *Overrides) Validate() error {
	if o == nil {
		return nil
	}
	if o.MaxTabWidth != nil && *o.MaxTabWidth < 4 {
		return fmt.Errorf("%w: max_tab_width %d is below the minimum of 4", ErrBadShape, *o.MaxTabWidth)
	}
	if o.ZoomIndicator != nil && o.ZoomIndicator.Style != nil {
		switch *o.ZoomIndicator.Style {
		case ZoomStyleIcon, ZoomStyleNumber:
		default:
			return fmt.Errorf("%w: zoom_indicator.style %q (want %q or %q)",
				ErrBadShape, *o.ZoomIndicator.Style, ZoomStyleIcon, ZoomStyleNumber)
		}
	}
	return nil
}

// Merged returns a copy of c with o applied field by field. A nil or empty
// override returns c unchanged (modulo the copied icon map). Applying the
// same overrides twice yields the same result.
func (c Config) Merged(o *Overrides) Config {
	merged := c
	merged.ProcessIcons = make(map[string]string, len(c.ProcessIcons))
	for name, icon := range c.ProcessIcons {
		merged.ProcessIcons[name] = icon
	}

	if o == nil {
		return merged
	}

	if o.BarAtBottom != nil {
		merged.BarAtBottom = *o.BarAtBottom
	}
	if o.HideWhenSingle != nil {
		merged.HideWhenSingle = *o.HideWhenSingle
	}
	if o.MaxTabWidth != nil {
		merged.MaxTabWidth = *o.MaxTabWidth
	}
	if o.UnzoomOnSwitch != nil {
		merged.UnzoomOnSwitch = *o.UnzoomOnSwitch
	}
	if o.Scheme != nil {
		merged.Scheme = *o.Scheme
	}

	if o.Separators != nil {
		if o.Separators.Left != nil {
			merged.Separators.Left = *o.Separators.Left
		}
		if o.Separators.LeftThin != nil {
			merged.Separators.LeftThin = *o.Separators.LeftThin
		}
		if o.Separators.Right != nil {
			merged.Separators.Right = *o.Separators.Right
		}
		if o.Separators.RightThin != nil {
			merged.Separators.RightThin = *o.Separators.RightThin
		}
	}

	for name, icon := range o.ProcessIcons {
		merged.ProcessIcons[name] = icon
	}

	if o.ZoomIndicator != nil {
		if o.ZoomIndicator.Enabled != nil {
			merged.ZoomIndicator.Enabled = *o.ZoomIndicator.Enabled
		}
		if o.ZoomIndicator.Style != nil {
			merged.ZoomIndicator.Style = *o.ZoomIndicator.Style
		}
	}

	return merged
}
