package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"taskboard/internal/config"
	"taskboard/internal/drag"
)

// updateMouse turns terminal mouse events into drag or touch calls. Under
// touch input a press, motion and release map to touch start, move and end.
func (m *Model) updateMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode != normalMode {
		return nil
	}
	regions := m.layout()
	p := drag.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		colIdx, cardIdx, id := hitCard(regions, p)
		if m.opts.Input == config.InputTouch {
			m.drag.TouchStart(id, p)
		} else {
			m.drag.DragStart(id)
		}
		if id != "" {
			m.focusedColumn = colIdx
			m.columnCardFocus[colIdx] = cardIdx
			m.hoverColumn = colIdx
		}

	case tea.MouseActionMotion:
		if m.drag.State() != drag.Dragging {
			return nil
		}
		m.hoverColumn = hitColumn(regions, p.X)
		if m.drag.Source() == drag.SourceTouch {
			m.drag.TouchMove(p)
		}

	case tea.MouseActionRelease:
		if m.drag.State() != drag.Dragging {
			return nil
		}
		var cmd tea.Cmd
		colIdx := hitColumn(regions, p.X)
		if m.drag.Source() == drag.SourceTouch {
			if m.opts.TouchDrop && colIdx >= 0 {
				cmd = m.dropOn(regions[colIdx].col)
			}
			m.drag.TouchEnd()
		} else {
			if colIdx >= 0 {
				cmd = m.dropOn(regions[colIdx].col)
			}
			m.drag.DragEnd()
		}
		m.hoverColumn = -1
		return cmd
	}
	return nil
}

// hitColumn returns the index of the column under x, or -1.
func hitColumn(regions []columnRegion, x int) int {
	for i, r := range regions {
		if x >= r.left && x < r.right {
			return i
		}
	}
	return -1
}

// hitCard returns the column index, card index and id of the drawn card under p.
// The id is empty when p is not over a card.
func hitCard(regions []columnRegion, p drag.Point) (int, int, string) {
	colIdx := hitColumn(regions, p.X)
	if colIdx < 0 {
		return -1, -1, ""
	}
	for _, c := range regions[colIdx].cards {
		if p.Y >= c.top && p.Y < c.bottom {
			return colIdx, c.index, c.id
		}
	}
	return colIdx, -1, ""
}
