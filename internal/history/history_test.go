package history_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/column"
	"taskboard/internal/history"
)

func TestHistory_PushPop(t *testing.T) {
	t.Parallel()

	h := history.New()
	_, ok := h.Pop()
	assert.False(t, ok)

	h.Push(history.Move{CardID: "1", From: column.Todo, To: column.Progress})
	h.Push(history.Move{CardID: "2", From: column.Progress, To: column.Completed})
	assert.Equal(t, 2, h.Len())

	m, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, "2", m.CardID)

	m, ok = h.Pop()
	require.True(t, ok)
	assert.Equal(t, "1", m.CardID)
	assert.Zero(t, h.Len())
}

func TestHistory_SkipsSameColumn(t *testing.T) {
	t.Parallel()

	h := history.New()
	h.Push(history.Move{CardID: "1", From: column.Todo, To: column.Todo})
	assert.Zero(t, h.Len())
}

func TestHistory_Bounded(t *testing.T) {
	t.Parallel()

	h := history.New()
	for i := 0; i < 150; i++ {
		h.Push(history.Move{CardID: fmt.Sprint(i), From: column.Todo, To: column.Completed})
	}
	assert.Equal(t, 100, h.Len())

	var last history.Move
	for h.Len() > 0 {
		last, _ = h.Pop()
	}
	assert.Equal(t, "50", last.CardID, "oldest moves fall off first")
}

func TestMove_Inverse(t *testing.T) {
	t.Parallel()

	m := history.Move{CardID: "1", From: column.Todo, To: column.Completed}
	assert.Equal(t, history.Move{CardID: "1", From: column.Completed, To: column.Todo}, m.Inverse())
}
