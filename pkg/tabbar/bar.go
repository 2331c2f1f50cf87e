package tabbar

import (
	"errors"
	"fmt"

	"github.com/b/tabline/pkg/config"
)

var (
	// ErrNilHostConfig rejects setup without a host configuration.
	ErrNilHostConfig = errors.New("nil host config")
)

// HostConfig mirrors the host options the bar manages. Setup overwrites
// these four fields from the merged configuration; callers push them back
// to the multiplexer as needed.
type HostConfig struct {
	BarAtBottom    bool
	HideWhenSingle bool
	MaxTabWidth    int
	UnzoomOnSwitch bool
}

// Bar formats tabs against one merged configuration, captured at setup
// and never written afterwards.
type Bar struct {
	cfg config.Config
}

// Setup merges overrides over the built-in defaults, mutates the four
// managed host fields and returns the bound bar. The host config must be
// present; overrides may be nil but must be well formed when given.
func Setup(host *HostConfig, overrides *config.Overrides) (*Bar, error) {
	if host == nil {
		return nil, ErrNilHostConfig
	}
	if err := overrides.Validate(); err != nil {
		return nil, fmt.Errorf("invalid overrides: %w", err)
	}

	cfg := config.Default().Merged(overrides)

	host.BarAtBottom = cfg.BarAtBottom
	host.HideWhenSingle = cfg.HideWhenSingle
	host.MaxTabWidth = cfg.MaxTabWidth
	host.UnzoomOnSwitch = cfg.UnzoomOnSwitch

	return &Bar{cfg: cfg}, nil
}

// Config returns the merged configuration the bar renders with. Treat it
// as read-only.
func (b *Bar) Config() config.Config {
	return b.cfg
}
