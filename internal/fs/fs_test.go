package fs_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/board"
	"taskboard/internal/card"
	"taskboard/internal/column"
	"taskboard/internal/fs"
)

func TestLoadCards_MissingFileUsesSample(t *testing.T) {
	t.Parallel()

	cards, err := fs.LoadCards(context.Background(), filepath.Join(t.TempDir(), "cards.yaml"))
	require.NoError(t, err)
	assert.Equal(t, fs.SampleCards(), cards)
}

func TestSampleCards_FormValidBoard(t *testing.T) {
	t.Parallel()

	s, err := board.NewStore(fs.SampleCards())
	require.NoError(t, err)
	for _, col := range column.All() {
		assert.NotZero(t, s.Count(col), "column %s", col)
	}
}

func TestLoadCards_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cards.yaml")
	src := `
- id: "1"
  title: Brainstorming
  column: todo
  task_priority: 0
  comments: 2
- title: Untitled id
  column: completed
  task_priority: high
  images:
    - image: images/x.png
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cards, err := fs.LoadCards(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	assert.Equal(t, "1", cards[0].ID)
	assert.Equal(t, card.PriorityLow, cards[0].Priority)
	assert.Equal(t, 2, cards[0].Comments)

	assert.NotEmpty(t, cards[1].ID, "missing ids are generated")
	assert.Equal(t, column.Completed, cards[1].Column)
	assert.Equal(t, card.PriorityHigh, cards[1].Priority)
	assert.Equal(t, []card.Image{{Src: "images/x.png"}}, cards[1].Images)
}

func TestLoadCards_JSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cards.json")
	src := `[
  {"id": 1, "title": "Research", "column": "progress", "task_priority": 2,
   "comments": 1, "files": 4, "assignees": [{"avatars": "avatars/ben.png"}]}
]`
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	cards, err := fs.LoadCards(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "1", cards[0].ID)
	assert.Equal(t, column.Progress, cards[0].Column)
	assert.Equal(t, 4, cards[0].Files)
	assert.Equal(t, "B", cards[0].Assignees[0].Initial())
}

func TestLoadCards_MalformedFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cards.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- title: [unterminated\n"), 0644))

	_, err := fs.LoadCards(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadCards_SQLiteSeedsEmptyDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.db")

	first, err := fs.LoadCards(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, fs.SampleCards(), first)

	second, err := fs.LoadCards(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, fs.SampleCards(), second, "seeded rows read back unchanged")
}

func TestLoadCards_SQLiteKeepsOrderAndChildren(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "board.sqlite")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, fs.CreateSchema(ctx, db))

	want := []card.Card{
		{
			ID: "z", Title: "Last id first", Column: column.Progress, Priority: card.PriorityHigh,
			Images:    []card.Image{{Src: "b.png"}, {Src: "a.png"}},
			Assignees: []card.Assignee{{Avatar: "x.png"}},
		},
		{ID: "a", Title: "Second", Description: "two", Column: column.Todo, Comments: 5, Files: 2},
	}
	require.NoError(t, fs.SeedCards(ctx, db, want))
	require.NoError(t, db.Close())

	got, err := fs.LoadCards(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestState_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), ".kanban")

	state, err := fs.LoadState(dir)
	require.NoError(t, err)
	assert.Equal(t, fs.AppState{}, state)

	require.NoError(t, fs.SaveState(dir, fs.AppState{FocusedColumn: 2, FocusedCard: 1}))

	state, err = fs.LoadState(dir)
	require.NoError(t, err)
	assert.Equal(t, fs.AppState{FocusedColumn: 2, FocusedCard: 1}, state)
}

func TestLoadState_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fs.StateFileName), []byte("{"), 0644))

	_, err := fs.LoadState(dir)
	require.Error(t, err)
}
