package tabbar

import (
	"errors"
	"testing"

	"github.com/b/tabline/pkg/config"
)

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestSetup_NilHost(t *testing.T) {
	_, err := Setup(nil, nil)
	if !errors.Is(err, ErrNilHostConfig) {
		t.Errorf("Setup(nil, nil) = %v, want ErrNilHostConfig", err)
	}
}

func TestSetup_MalformedOverrides(t *testing.T) {
	o := &config.Overrides{
		ZoomIndicator: &config.ZoomIndicatorOverrides{Style: strPtr("blink")},
	}

	_, err := Setup(&HostConfig{}, o)
	if !errors.Is(err, config.ErrBadShape) {
		t.Errorf("Setup with bad style = %v, want ErrBadShape", err)
	}
}

func TestSetup_Defaults(t *testing.T) {
	host := &HostConfig{}

	bar, err := Setup(host, nil)
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	if host.MaxTabWidth != 32 {
		t.Errorf("host.MaxTabWidth = %d, want 32", host.MaxTabWidth)
	}
	if !host.BarAtBottom {
		t.Error("host.BarAtBottom should default to true")
	}
	if bar.Config().Scheme != "dark" {
		t.Errorf("Config().Scheme = %q, want dark", bar.Config().Scheme)
	}
}

func TestSetup_MutatesHostFields(t *testing.T) {
	host := &HostConfig{}
	o := &config.Overrides{
		BarAtBottom:    boolPtr(false),
		HideWhenSingle: boolPtr(true),
		MaxTabWidth:    intPtr(24),
		UnzoomOnSwitch: boolPtr(true),
	}

	bar, err := Setup(host, o)
	if err != nil {
		t.Fatalf("Setup() error: %v", err)
	}

	if host.BarAtBottom {
		t.Error("BarAtBottom not pushed to host")
	}
	if !host.HideWhenSingle {
		t.Error("HideWhenSingle not pushed to host")
	}
	if host.MaxTabWidth != 24 {
		t.Errorf("host.MaxTabWidth = %d, want 24", host.MaxTabWidth)
	}
	if !host.UnzoomOnSwitch {
		t.Error("UnzoomOnSwitch not pushed to host")
	}

	if bar.Config().MaxTabWidth != 24 {
		t.Errorf("bar config MaxTabWidth = %d, want 24", bar.Config().MaxTabWidth)
	}
}
