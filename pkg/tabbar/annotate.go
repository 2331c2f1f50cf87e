package tabbar

import (
	"strconv"

	"github.com/b/tabline/pkg/config"
	"github.com/b/tabline/pkg/icons"
	"github.com/b/tabline/pkg/tmux"
)

// Annotate decorates a tab's 1-based position with its pane state. Single
// pane tabs and disabled indicators always yield the plain index. A zoomed
// multi-pane tab shows the zoom glyph, alone for the icon style (the index
// is intentionally dropped) or with a subscript pane count for the number
// style. Unzoomed multi-pane tabs show index plus subscript count.
func Annotate(pos int, panes []tmux.Pane, zoom config.ZoomIndicator) string {
	index := strconv.Itoa(pos)

	if !zoom.Enabled || len(panes) <= 1 {
		return index
	}

	zoomed := false
	for _, p := range panes {
		if p.Zoomed {
			zoomed = true
			break
		}
	}

	if zoomed {
		if zoom.Style == config.ZoomStyleIcon {
			return icons.Zoom
		}
		return icons.Zoom + icons.Subscript(len(panes))
	}

	return index + icons.Subscript(len(panes))
}
