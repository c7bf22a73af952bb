package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"taskboard/internal/column"
	"taskboard/internal/history"
)

// dropOn completes the current drag session's drop into col. The caller ends
// the session afterwards.
func (m *Model) dropOn(col column.ID) tea.Cmd {
	id, ok := m.drag.DraggedID()
	if !ok {
		return nil
	}
	before, known := m.store.Card(id)

	found, err := m.drag.Drop(col)
	if err != nil {
		log.Warn().Err(err).Str("card", id).Str("column", string(col)).Msg("drop failed")
		return m.setStatus(fmt.Sprintf("Could not move card: %v", err))
	}
	if !found || !known {
		return nil
	}

	m.history.Push(history.Move{CardID: id, From: before.Column, To: col})
	m.clampFocusedCard()
	m.focusCard(id)
	if before.Column == col {
		return nil
	}
	return m.setStatus(fmt.Sprintf("Moved %q to %s", before.Title, col.Label()))
}

// undo puts the most recently moved card back where it came from.
func (m *Model) undo() tea.Cmd {
	move, ok := m.history.Pop()
	if !ok {
		return m.setStatus("Nothing to undo")
	}
	back := move.Inverse()
	if _, err := m.store.ReassignColumn(back.CardID, back.To); err != nil {
		log.Warn().Err(err).Str("card", back.CardID).Msg("undo failed")
		return m.setStatus(fmt.Sprintf("Undo failed: %v", err))
	}
	m.clampFocusedCard()
	m.focusCard(back.CardID)
	return m.setStatus("Undo successful")
}
