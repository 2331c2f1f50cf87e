package tabbar

import (
	"testing"

	"github.com/b/tabline/pkg/config"
	"github.com/b/tabline/pkg/icons"
	"github.com/b/tabline/pkg/tmux"
)

func panesWithZoom(count int, zoomedIndex int) []tmux.Pane {
	panes := make([]tmux.Pane, count)
	for i := range panes {
		panes[i] = tmux.Pane{Index: i, Zoomed: i == zoomedIndex}
	}
	return panes
}

func TestAnnotate(t *testing.T) {
	enabled := func(style string) config.ZoomIndicator {
		return config.ZoomIndicator{Enabled: true, Style: style}
	}
	disabled := config.ZoomIndicator{Enabled: false, Style: config.ZoomStyleIcon}

	tests := []struct {
		name  string
		pos   int
		panes []tmux.Pane
		zoom  config.ZoomIndicator
		want  string
	}{
		{"disabled gives plain index", 2, panesWithZoom(3, 0), disabled, "2"},
		{"single pane gives plain index", 1, panesWithZoom(1, -1), enabled(config.ZoomStyleIcon), "1"},
		{"single zoomed pane still plain", 4, panesWithZoom(1, 0), enabled(config.ZoomStyleIcon), "4"},
		{"zoomed icon style drops index", 1, panesWithZoom(3, 1), enabled(config.ZoomStyleIcon), icons.Zoom},
		{"zoomed number style counts panes", 1, panesWithZoom(3, 1), enabled(config.ZoomStyleNumber), icons.Zoom + "₃"},
		{"multi pane unzoomed", 2, panesWithZoom(2, -1), enabled(config.ZoomStyleIcon), "2₂"},
		{"many panes unzoomed", 1, panesWithZoom(12, -1), enabled(config.ZoomStyleNumber), "1" + icons.Many},
		{"many panes zoomed number", 3, panesWithZoom(12, 0), enabled(config.ZoomStyleNumber), icons.Zoom + icons.Many},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Annotate(tt.pos, tt.panes, tt.zoom); got != tt.want {
				t.Errorf("Annotate(%d, %d panes, %+v) = %q, want %q",
					tt.pos, len(tt.panes), tt.zoom, got, tt.want)
			}
		})
	}
}
