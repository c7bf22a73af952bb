// internal/tui/update_normal.go
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"taskboard/internal/column"
	"taskboard/internal/drag"
)

func (m *Model) updateNormalMode(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	dragging := m.drag.State() == drag.Dragging

	if keyMsg.Type == tea.KeyCtrlP {
		if dragging {
			m.endDrag()
		}
		return m.openFinder()
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return tea.Quit

	case "esc":
		if dragging {
			m.endDrag()
		}

	case ":":
		if dragging {
			m.endDrag()
		}
		m.statusMessage = ""
		m.mode = commandMode
		m.textInput.SetValue("")
		return m.textInput.Focus()

	case "h", "left":
		if m.focusedColumn > 0 {
			m.focusedColumn--
			m.clampFocusedCard()
		}
		if dragging {
			m.hoverColumn = m.focusedColumn
		}

	case "l", "right":
		if m.focusedColumn < len(column.All())-1 {
			m.focusedColumn++
			m.clampFocusedCard()
		}
		if dragging {
			m.hoverColumn = m.focusedColumn
		}

	case "k", "up":
		if !dragging && m.currentFocusedCard() > 0 {
			m.setCurrentFocusedCard(m.currentFocusedCard() - 1)
		}

	case "j", "down":
		if !dragging {
			m.setCurrentFocusedCard(m.currentFocusedCard() + 1)
		}

	case "g":
		if !dragging {
			m.setCurrentFocusedCard(0)
		}

	case "G":
		if !dragging {
			m.setCurrentFocusedCard(m.store.Count(m.focusedColumnID()) - 1)
		}

	case " ", "space", "enter":
		if dragging {
			var cmd tea.Cmd
			if m.drag.Source() != drag.SourceTouch || m.opts.TouchDrop {
				cmd = m.dropOn(m.focusedColumnID())
			}
			m.endDrag()
			return cmd
		}
		if keyMsg.String() == "enter" {
			return nil
		}
		if id, ok := m.focusedCardID(); ok {
			m.drag.DragStart(id)
			m.hoverColumn = m.focusedColumn
		}

	case "u":
		if !dragging {
			return m.undo()
		}
	}
	return nil
}

// endDrag closes the session with the end handler matching its source.
func (m *Model) endDrag() {
	if m.drag.Source() == drag.SourceTouch {
		m.drag.TouchEnd()
	} else {
		m.drag.DragEnd()
	}
	m.hoverColumn = -1
}
