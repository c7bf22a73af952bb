package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/board"
	"taskboard/internal/card"
	"taskboard/internal/column"
)

func twoCards() []card.Card {
	return []card.Card{
		card.New("1", "Brainstorming", column.Todo),
		card.New("2", "Research", column.Progress),
	}
}

func newStore(t *testing.T, cards []card.Card) *board.Store {
	t.Helper()

	s, err := board.NewStore(cards)
	require.NoError(t, err)
	return s
}

func TestNewStore_RejectsUnknownColumn(t *testing.T) {
	t.Parallel()

	_, err := board.NewStore([]card.Card{card.New("1", "x", "review")})
	require.ErrorIs(t, err, board.ErrUnknownColumn)
}

func TestNewStore_RejectsDuplicateID(t *testing.T) {
	t.Parallel()

	cards := []card.Card{card.New("1", "a", column.Todo), card.New("1", "b", column.Progress)}
	_, err := board.NewStore(cards)
	require.ErrorIs(t, err, board.ErrDuplicateCard)
}

func TestNewStore_CopiesInput(t *testing.T) {
	t.Parallel()

	in := twoCards()
	s := newStore(t, in)
	in[0].Column = column.Completed

	got, ok := s.Card("1")
	require.True(t, ok)
	assert.Equal(t, column.Todo, got.Column)
}

func TestStore_EveryColumnValidAfterStartup(t *testing.T) {
	t.Parallel()

	s := newStore(t, twoCards())
	for _, c := range s.Cards() {
		assert.True(t, c.Column.Valid(), "card %s", c.ID)
	}
}

func TestReassignColumn_Scenario(t *testing.T) {
	t.Parallel()

	s := newStore(t, twoCards())

	found, err := s.ReassignColumn("1", column.Completed)
	require.NoError(t, err)
	assert.True(t, found)

	cards := s.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "1", cards[0].ID)
	assert.Equal(t, column.Completed, cards[0].Column)
	assert.Equal(t, "2", cards[1].ID)
	assert.Equal(t, column.Progress, cards[1].Column)

	assert.Equal(t, 0, s.Count(column.Todo))
	assert.Equal(t, 1, s.Count(column.Completed))
	assert.Equal(t, 1, s.Count(column.Progress))
}

func TestReassignColumn_ChangesOnlyTarget(t *testing.T) {
	t.Parallel()

	in := twoCards()
	in[0].Description = "desc"
	in[0].Comments = 4
	in[0].Assignees = []card.Assignee{{Avatar: "a.png"}}
	s := newStore(t, in)

	_, err := s.ReassignColumn("1", column.Progress)
	require.NoError(t, err)

	want := in[0]
	want.Column = column.Progress
	got := s.Cards()
	assert.Equal(t, want, got[0])
	assert.Equal(t, in[1], got[1])
}

func TestReassignColumn_UnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	s := newStore(t, twoCards())
	before := s.Cards()

	found, err := s.ReassignColumn("404", column.Completed)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, before, s.Cards())
	assert.Zero(t, s.Version())
}

func TestReassignColumn_RejectsUnknownColumn(t *testing.T) {
	t.Parallel()

	s := newStore(t, twoCards())
	before := s.Cards()

	found, err := s.ReassignColumn("1", "archived")
	require.ErrorIs(t, err, board.ErrUnknownColumn)
	assert.False(t, found)
	assert.Equal(t, before, s.Cards())
}

func TestReassignColumn_Idempotent(t *testing.T) {
	t.Parallel()

	once := newStore(t, twoCards())
	_, err := once.ReassignColumn("1", column.Completed)
	require.NoError(t, err)

	twice := newStore(t, twoCards())
	_, err = twice.ReassignColumn("1", column.Completed)
	require.NoError(t, err)
	_, err = twice.ReassignColumn("1", column.Completed)
	require.NoError(t, err)

	assert.Equal(t, once.Cards(), twice.Cards())
}

func TestReassignColumn_SameColumnIsHarmless(t *testing.T) {
	t.Parallel()

	s := newStore(t, twoCards())
	found, err := s.ReassignColumn("2", column.Progress)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, twoCards(), s.Cards())
}

func TestReassignColumn_ReplacesList(t *testing.T) {
	t.Parallel()

	s := newStore(t, twoCards())

	var got [][]card.Card
	s.Subscribe(func(cards []card.Card) { got = append(got, cards) })

	_, err := s.ReassignColumn("2", column.Todo)
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, column.Todo, got[0][1].Column)
	assert.Equal(t, uint64(1), s.Version())

	// The notified slice is a copy; changing it does not reach the store.
	got[0][1].Column = column.Completed
	c, _ := s.Card("2")
	assert.Equal(t, column.Todo, c.Column)
}

func TestCounts_MatchFilteredCards(t *testing.T) {
	t.Parallel()

	s := newStore(t, []card.Card{
		card.New("1", "a", column.Todo),
		card.New("2", "b", column.Todo),
		card.New("3", "c", column.Progress),
		card.New("4", "d", column.Completed),
	})

	moves := []struct {
		id  string
		col column.ID
	}{
		{"1", column.Completed},
		{"3", column.Todo},
		{"4", column.Progress},
		{"2", column.Completed},
	}

	check := func() {
		counts := s.Counts()
		for _, col := range column.All() {
			assert.Len(t, s.ByColumn(col), counts[col], "column %s", col)
			assert.Equal(t, counts[col], s.Count(col))
		}
	}

	check()
	for _, mv := range moves {
		_, err := s.ReassignColumn(mv.id, mv.col)
		require.NoError(t, err)
		check()
	}
}

func TestByColumn_KeepsStoreOrder(t *testing.T) {
	t.Parallel()

	s := newStore(t, []card.Card{
		card.New("a", "a", column.Todo),
		card.New("b", "b", column.Progress),
		card.New("c", "c", column.Todo),
	})

	ids := func(cards []card.Card) []string {
		out := make([]string, 0, len(cards))
		for _, c := range cards {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a", "c"}, ids(s.ByColumn(column.Todo)))
	_, err := s.ReassignColumn("b", column.Todo)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids(s.ByColumn(column.Todo)))
}
