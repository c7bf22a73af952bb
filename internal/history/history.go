package history

import "taskboard/internal/column"

const maxHistorySize = 100

// Move is one completed column change.
type Move struct {
	CardID string
	From   column.ID
	To     column.ID
}

// Inverse is the move that undoes m.
func (m Move) Inverse() Move {
	return Move{CardID: m.CardID, From: m.To, To: m.From}
}

type History struct {
	moves []Move
}

func New() *History {
	return &History{
		moves: make([]Move, 0),
	}
}

// Push records m. Moves that leave the card where it was are not recorded.
func (h *History) Push(m Move) {
	if m.From == m.To {
		return
	}
	if len(h.moves) >= maxHistorySize {
		h.moves = h.moves[1:]
	}
	h.moves = append(h.moves, m)
}

func (h *History) Pop() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	last := h.moves[len(h.moves)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return last, true
}

func (h *History) Len() int {
	return len(h.moves)
}
