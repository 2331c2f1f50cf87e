package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/b/tabline/pkg/colors"
	"github.com/b/tabline/pkg/config"
	"github.com/b/tabline/pkg/paths"
	"github.com/b/tabline/pkg/perf"
	"github.com/b/tabline/pkg/tabbar"
	"github.com/b/tabline/pkg/tmux"
)

var (
	schemeName = flag.String("scheme", "", "color scheme, overrides the configured one (\"auto\" detects)")
	configFile = flag.String("config", "", "config file path (default: "+paths.ConfigPath()+")")
	barWidth   = flag.Int("width", 0, "bar width in cells (default: tmux client width)")
	ansiMode   = flag.Bool("ansi", false, "emit ANSI escapes instead of tmux format directives")
	color256   = flag.Bool("color256", false, "map scheme colors onto the 256-color palette")
	initMode   = flag.Bool("init", false, "write the default config file and exit")
	debugMode  = flag.Bool("debug", false, "enable debug logging")
)

var debugLog *log.Logger

func initDebugLog() {
	if !*debugMode {
		debugLog = log.New(io.Discard, "", 0)
		return
	}
	// Log to a file, stdout is the rendered bar
	f, err := os.OpenFile(paths.LogPath("render"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		debugLog = log.New(os.Stderr, "[tabline] ", log.LstdFlags)
		return
	}
	debugLog = log.New(f, "[tabline] ", log.LstdFlags|log.Lmicroseconds)
}

func configPath() string {
	if *configFile != "" {
		return *configFile
	}
	return paths.ConfigPath()
}

// loadOverrides reads the config file. A missing file is not an error,
// the defaults apply as-is.
func loadOverrides() (*config.Overrides, error) {
	overrides, err := config.LoadOverrides(configPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return overrides, nil
}

func writeDefaultConfig() {
	path := configPath()
	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "tabline: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func main() {
	flag.Parse()
	initDebugLog()

	if *initMode {
		writeDefaultConfig()
		return
	}

	t := perf.Start("render")
	defer t.Stop()

	overrides, err := loadOverrides()
	if err != nil {
		debugLog.Printf("config: %v", err)
		fmt.Print("tabline: config error")
		return
	}

	var host tabbar.HostConfig
	bar, err := tabbar.Setup(&host, overrides)
	if err != nil {
		debugLog.Printf("setup: %v", err)
		fmt.Print("tabline: config error")
		return
	}

	tabs, err := tmux.ListTabs()
	if err != nil {
		debugLog.Printf("list tabs: %v", err)
		fmt.Print("tabline: not in tmux")
		return
	}

	panesFor := func(tab tmux.Tab) []tmux.Pane {
		panes, err := tmux.ListPanes(tab.Index)
		if err != nil {
			debugLog.Printf("list panes for %s: %v", tab.ID, err)
			return nil
		}
		return panes
	}

	name := bar.Config().Scheme
	if *schemeName != "" {
		name = *schemeName
	}
	scheme := colors.GetScheme(name).Normalized()

	width := *barWidth
	if width <= 0 {
		width = tmux.Width()
	}

	segs := bar.FormatBar(tabs, panesFor, scheme, width)
	if *color256 {
		segs = tabbar.MapColors(segs, colors.HexToTmuxColor)
	}

	if *ansiMode {
		// Full 24-bit color for previews outside the status line
		lipgloss.SetColorProfile(termenv.TrueColor)
		fmt.Println(tabbar.EncodeANSI(segs))
		return
	}
	fmt.Print(tabbar.EncodeTmux(segs))
}
