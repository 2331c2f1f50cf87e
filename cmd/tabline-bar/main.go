package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-runewidth"
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
	debugMode  = flag.Bool("debug", false, "enable debug logging")
)

var debugLog *log.Logger

func initDebugLog() {
	if !*debugMode {
		debugLog = log.New(io.Discard, "", 0)
		return
	}
	// Log to a file, the terminal belongs to the bar
	f, err := os.OpenFile(paths.LogPath("bar"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		debugLog = log.New(os.Stderr, "[tabline-bar] ", log.LstdFlags)
		return
	}
	debugLog = log.New(f, "[tabline-bar] ", log.LstdFlags|log.Lmicroseconds)
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

func schemeFor(bar *tabbar.Bar) colors.Scheme {
	name := bar.Config().Scheme
	if *schemeName != "" {
		name = *schemeName
	}
	return colors.GetScheme(name).Normalized()
}

type keyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "prev tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type model struct {
	bar    *tabbar.Bar
	keys   keyMap
	scheme colors.Scheme
	tabs   []tmux.Tab
	panes  map[string][]tmux.Pane
	width  int
	err    error
}

type refreshMsg struct{}

type reloadConfigMsg struct{}

type tickMsg time.Time

func triggerRefresh() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(triggerRefresh(), tick())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.selectRelative(-1)
			return m, triggerRefresh()
		case key.Matches(msg, m.keys.Next):
			m.selectRelative(1)
			return m, triggerRefresh()
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := m.bar.HitTest(msg.X, m.tabs, m.panesFor, m.scheme, m.width); tab != nil {
				m.selectTab(*tab)
				return m, triggerRefresh()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tickMsg:
		return m.refreshed(), tick()

	case refreshMsg:
		return m.refreshed(), nil

	case reloadConfigMsg:
		return m.reloaded(), triggerRefresh()
	}
	return m, nil
}

func (m model) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c")).Render("tabline: not in tmux")
	}

	segs := m.bar.FormatBar(m.tabs, m.panesFor, m.scheme, m.width)
	if segs == nil {
		return ""
	}

	bar := tabbar.EncodeANSI(segs)

	// Paint the rest of the line in the bar background, with the key help
	// tucked into the right edge when it fits
	fill := m.width - tabbar.TotalWidth(segs)
	if fill <= 0 {
		return bar
	}

	fillStyle := lipgloss.NewStyle()
	if m.scheme.BarBg != "" {
		fillStyle = fillStyle.Background(lipgloss.Color(m.scheme.BarBg))
	}

	hint := m.shortHelp()
	if hw := runewidth.StringWidth(hint); hw+2 <= fill {
		hintStyle := fillStyle
		if m.scheme.DividerFg != "" {
			hintStyle = hintStyle.Foreground(lipgloss.Color(m.scheme.DividerFg))
		}
		return bar + fillStyle.Render(strings.Repeat(" ", fill-hw-1)) +
			hintStyle.Render(hint) + fillStyle.Render(" ")
	}
	return bar + fillStyle.Render(strings.Repeat(" ", fill))
}

// shortHelp assembles a one-line hint from the key bindings.
func (m model) shortHelp() string {
	var parts []string
	for _, b := range []key.Binding{m.keys.Prev, m.keys.Next, m.keys.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

func (m model) panesFor(tab tmux.Tab) []tmux.Pane {
	return m.panes[tab.ID]
}

// refreshed re-reads tabs and panes from tmux.
func (m model) refreshed() model {
	t := perf.Start("refresh")
	defer t.Stop()

	tabs, err := tmux.ListTabs()
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.tabs = tabs

	m.panes = make(map[string][]tmux.Pane, len(tabs))
	for _, tab := range tabs {
		panes, err := tmux.ListPanes(tab.Index)
		if err != nil {
			debugLog.Printf("list panes for %s: %v", tab.ID, err)
			continue
		}
		m.panes[tab.ID] = panes
	}
	return m
}

// reloaded re-reads the config file. A broken file keeps the old config.
func (m model) reloaded() model {
	overrides, err := loadOverrides()
	if err != nil {
		debugLog.Printf("config reload: %v", err)
		return m
	}

	var host tabbar.HostConfig
	bar, err := tabbar.Setup(&host, overrides)
	if err != nil {
		debugLog.Printf("config reload: %v", err)
		return m
	}

	m.bar = bar
	m.scheme = schemeFor(bar)
	if err := tmux.SetBarPosition(host.BarAtBottom); err != nil {
		debugLog.Printf("set bar position: %v", err)
	}
	return m
}

// selectTab switches to the given tab, releasing the current zoom first
// when unzoom_on_switch is set.
func (m model) selectTab(tab tmux.Tab) {
	if m.bar.Config().UnzoomOnSwitch {
		for _, t := range m.tabs {
			if t.Active && t.Zoomed && t.ID != tab.ID {
				if err := tmux.Unzoom(t.ID); err != nil {
					debugLog.Printf("unzoom %s: %v", t.ID, err)
				}
			}
		}
	}
	if err := tmux.SelectTab(tab.ID); err != nil {
		debugLog.Printf("select %s: %v", tab.ID, err)
	}
}

func (m model) selectRelative(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	active := 0
	for i, t := range m.tabs {
		if t.Active {
			active = i
			break
		}
	}
	next := (active + delta + len(m.tabs)) % len(m.tabs)
	m.selectTab(m.tabs[next])
}

func watchConfig(p *tea.Program, path string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		debugLog.Printf("config watch: %v", err)
		return
	}
	_ = watcher.Add(path)
	go func() {
		for {
			select {
			case event := <-watcher.Events:
				if event.Op&fsnotify.Write == fsnotify.Write {
					p.Send(reloadConfigMsg{})
				}
			case <-watcher.Errors:
				return
			}
		}
	}()
}

func main() {
	flag.Parse()
	initDebugLog()

	// Consistent 24-bit color inside the bar pane
	lipgloss.SetColorProfile(termenv.TrueColor)

	overrides, err := loadOverrides()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabline-bar: %v\n", err)
		os.Exit(1)
	}

	var host tabbar.HostConfig
	bar, err := tabbar.Setup(&host, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabline-bar: %v\n", err)
		os.Exit(1)
	}

	if err := tmux.SetBarPosition(host.BarAtBottom); err != nil {
		debugLog.Printf("set bar position: %v", err)
	}

	m := model{
		bar:    bar,
		keys:   newKeyMap(),
		scheme: schemeFor(bar),
		width:  tmux.Width(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGUSR1)

	p := tea.NewProgram(m, tea.WithMouseCellMotion())
	watchConfig(p, configPath())

	go func() {
		for range sigChan {
			p.Send(refreshMsg{})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
