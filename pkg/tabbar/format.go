package tabbar

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/b/tabline/pkg/colors"
	"github.com/b/tabline/pkg/icons"
	"github.com/b/tabline/pkg/tmux"
)

const overflowMarker = "…" // ellipsis shown where tabs are clipped

// FormatTab renders one tab as a fresh segment list: the colored body
// (index decoration, thin divider, icon and title) followed by the
// trailing separators toward the next tab. The hover flag is accepted for
// callback parity and ignored. panes must be the tab's live pane list.
func (b *Bar) FormatTab(tab tmux.Tab, tabs []tmux.Tab, panes []tmux.Pane, scheme colors.Scheme, hover bool, maxWidth int) []Segment {
	pos := tabPosition(tab, tabs)

	var next *tmux.Tab
	if pos < len(tabs) {
		next = &tabs[pos]
	}

	segs := b.tabBody(tab, panes, scheme, pos, maxWidth)
	return append(segs, b.tabTrailing(tab, next, scheme)...)
}

// FormatBar assembles the whole bar: every tab formatted, clipped to width
// with the active tab kept visible behind overflow markers. Returns nil
// when the bar should not draw (no tabs, or a lone tab with
// hide_when_single set).
func (b *Bar) FormatBar(tabs []tmux.Tab, panesFor func(tmux.Tab) []tmux.Pane, scheme colors.Scheme, width int) []Segment {
	if len(tabs) == 0 {
		return nil
	}
	if b.cfg.HideWhenSingle && len(tabs) == 1 {
		return nil
	}

	bodies, lo, hi := b.layoutTabs(tabs, panesFor, scheme, width)

	var segs []Segment
	if lo > 0 {
		segs = append(segs, Segment{Bg: scheme.BarBg, Fg: scheme.InactiveFg, Text: overflowMarker})
	}
	for i := lo; i <= hi; i++ {
		var next *tmux.Tab
		if i < hi {
			next = &tabs[i+1]
		}
		segs = append(segs, bodies[i]...)
		segs = append(segs, b.tabTrailing(tabs[i], next, scheme)...)
	}
	if hi < len(tabs)-1 {
		segs = append(segs, Segment{Bg: scheme.BarBg, Fg: scheme.InactiveFg, Text: overflowMarker})
	}
	return segs
}

// HitTest maps an x cell coordinate on the rendered bar back to a tab,
// over the same clipped layout FormatBar draws. Returns nil for clicks on
// the overflow markers or past the last tab.
func (b *Bar) HitTest(x int, tabs []tmux.Tab, panesFor func(tmux.Tab) []tmux.Pane, scheme colors.Scheme, width int) *tmux.Tab {
	if len(tabs) == 0 {
		return nil
	}
	if b.cfg.HideWhenSingle && len(tabs) == 1 {
		return nil
	}

	bodies, lo, hi := b.layoutTabs(tabs, panesFor, scheme, width)

	cur := 0
	if lo > 0 {
		cur += runewidth.StringWidth(overflowMarker)
	}
	for i := lo; i <= hi; i++ {
		var next *tmux.Tab
		if i < hi {
			next = &tabs[i+1]
		}
		w := TotalWidth(bodies[i]) + TotalWidth(b.tabTrailing(tabs[i], next, scheme))
		if x >= cur && x < cur+w {
			return &tabs[i]
		}
		cur += w
	}
	return nil
}

// layoutTabs renders every tab body and picks the visible range [lo, hi],
// dropping the tabs farthest from the active one until the bar fits.
func (b *Bar) layoutTabs(tabs []tmux.Tab, panesFor func(tmux.Tab) []tmux.Pane, scheme colors.Scheme, width int) ([][]Segment, int, int) {
	active := 0
	bodies := make([][]Segment, len(tabs))
	widths := make([]int, len(tabs))
	total := 0
	for i, tab := range tabs {
		bodies[i] = b.tabBody(tab, panesFor(tab), scheme, i+1, b.cfg.MaxTabWidth)
		// Trailing separators cost up to two extra cells
		widths[i] = TotalWidth(bodies[i]) + 2
		total += widths[i]
		if tab.Active {
			active = i
		}
	}

	lo, hi := 0, len(tabs)-1
	if width > 0 && total > width {
		budget := width - 2*runewidth.StringWidth(overflowMarker)
		for total > budget && (lo < active || hi > active) {
			// Drop the tab farthest from the active one
			if active-lo >= hi-active {
				total -= widths[lo]
				lo++
			} else {
				total -= widths[hi]
				hi--
			}
		}
	}
	return bodies, lo, hi
}

// tabBody renders the colored block of one tab at the given 1-based
// position: annotation, thin divider, then icon and title.
func (b *Bar) tabBody(tab tmux.Tab, panes []tmux.Pane, scheme colors.Scheme, pos, maxWidth int) []Segment {
	bg, fg, bold := scheme.InactiveBg, scheme.InactiveFg, false
	if tab.Active {
		bg, fg, bold = scheme.ActiveBg, scheme.ActiveFg, true
	}
	divider := scheme.DividerFg
	if divider == "" {
		divider = fg
	}

	raw := tab.Name
	if raw == "" {
		raw = activePaneTitle(panes)
	}
	title := ResolveTitle(raw, maxWidth)
	icon := icons.Lookup(b.cfg.ProcessIcons, title.Process)

	annotation := Annotate(pos, panes, b.cfg.ZoomIndicator)
	annotationFg := fg
	if scheme.ZoomFg != "" && strings.HasPrefix(annotation, icons.Zoom) {
		annotationFg = scheme.ZoomFg
	}

	return []Segment{
		{Bg: bg, Fg: annotationFg, Bold: bold, Text: " " + annotation},
		{Bg: bg, Fg: divider, Text: " " + b.cfg.Separators.RightThin},
		{Bg: bg, Fg: fg, Bold: bold, Text: " " + icon + title.Text},
	}
}

// tabTrailing emits the separator blocks after a tab. Between two inactive
// tabs a thin chevron divides the shared background; before the active tab
// a padding block and a solid arrow telescope into the active color; after
// the active tab a solid arrow lands on the neighbor. A nil next means
// last tab, whose arrow always lands on the bar background.
func (b *Bar) tabTrailing(tab tmux.Tab, next *tmux.Tab, scheme colors.Scheme) []Segment {
	ownBg := scheme.InactiveBg
	if tab.Active {
		ownBg = scheme.ActiveBg
	}

	if next == nil {
		return []Segment{{Bg: scheme.BarBg, Fg: ownBg, Text: b.cfg.Separators.Right}}
	}

	nextBg := scheme.InactiveBg
	if next.Active {
		nextBg = scheme.ActiveBg
	}

	switch {
	case tab.Active:
		return []Segment{{Bg: nextBg, Fg: ownBg, Text: b.cfg.Separators.Right}}
	case next.Active:
		return []Segment{
			{Bg: ownBg, Fg: ownBg, Text: " "},
			{Bg: nextBg, Fg: ownBg, Text: b.cfg.Separators.Right},
		}
	default:
		divider := scheme.DividerFg
		if divider == "" {
			divider = scheme.InactiveFg
		}
		return []Segment{{Bg: ownBg, Fg: divider, Text: " " + b.cfg.Separators.RightThin}}
	}
}

// tabPosition returns the tab's 1-based position in the ordered list.
func tabPosition(tab tmux.Tab, tabs []tmux.Tab) int {
	for i := range tabs {
		if tabs[i].ID == tab.ID {
			return i + 1
		}
	}
	return 1
}

func activePaneTitle(panes []tmux.Pane) string {
	for _, p := range panes {
		if p.Active {
			return p.Title
		}
	}
	return ""
}
