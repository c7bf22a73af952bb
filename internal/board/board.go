package board

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"taskboard/internal/card"
	"taskboard/internal/column"
)

// Store owns the ordered card list. Callers only ever see copies.
type Store struct {
	cards     []card.Card
	version   uint64
	observers []func([]card.Card)
}

// NewStore copies cards into a new store. Every card must sit in a known
// column and ids must be unique.
func NewStore(cards []card.Card) (*Store, error) {
	seen := make(map[string]struct{}, len(cards))
	owned := make([]card.Card, 0, len(cards))
	for _, c := range cards {
		if !c.Column.Valid() {
			return nil, fmt.Errorf("board.NewStore: card %q: %w: %q", c.ID, ErrUnknownColumn, c.Column)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("board.NewStore: %w: %q", ErrDuplicateCard, c.ID)
		}
		seen[c.ID] = struct{}{}
		owned = append(owned, c.Clone())
	}
	return &Store{cards: owned}, nil
}

func (s *Store) Cards() []card.Card {
	return cloneAll(s.cards)
}

func (s *Store) Len() int {
	return len(s.cards)
}

func (s *Store) Card(id string) (card.Card, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return card.Card{}, false
	}
	return s.cards[i].Clone(), true
}

// ByColumn returns the cards in col, in store order.
func (s *Store) ByColumn(col column.ID) []card.Card {
	var out []card.Card
	for _, c := range s.cards {
		if c.Column == col {
			out = append(out, c.Clone())
		}
	}
	return out
}

func (s *Store) Count(col column.ID) int {
	n := 0
	for _, c := range s.cards {
		if c.Column == col {
			n++
		}
	}
	return n
}

func (s *Store) Counts() map[column.ID]int {
	counts := make(map[column.ID]int, len(column.All()))
	for _, col := range column.All() {
		counts[col] = 0
	}
	for _, c := range s.cards {
		counts[c.Column]++
	}
	return counts
}

// Version increases every time the card list is replaced.
func (s *Store) Version() uint64 {
	return s.version
}

// Subscribe registers fn to receive a copy of the new list after every change.
func (s *Store) Subscribe(fn func([]card.Card)) {
	s.observers = append(s.observers, fn)
}

// ReassignColumn moves the card with id into col and replaces the stored list
// with a new one. It reports whether a card matched; an unknown id is a no-op.
func (s *Store) ReassignColumn(id string, col column.ID) (bool, error) {
	if !col.Valid() {
		return false, fmt.Errorf("board.ReassignColumn: %w: %q", ErrUnknownColumn, col)
	}
	i := s.indexOf(id)
	if i < 0 {
		log.Debug().Str("card", id).Msg("reassign: no such card")
		return false, nil
	}

	next := make([]card.Card, len(s.cards))
	copy(next, s.cards)
	from := next[i].Column
	next[i].Column = col
	s.cards = next
	s.version++

	log.Debug().
		Str("card", id).
		Str("from", string(from)).
		Str("to", string(col)).
		Uint64("version", s.version).
		Msg("card reassigned")

	for _, fn := range s.observers {
		fn(cloneAll(next))
	}
	return true, nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.cards {
		if s.cards[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(cards []card.Card) []card.Card {
	out := make([]card.Card, len(cards))
	for i, c := range cards {
		out[i] = c.Clone()
	}
	return out
}
