package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"taskboard/internal/board"
	"taskboard/internal/column"
	"taskboard/internal/config"
	"taskboard/internal/drag"
	"taskboard/internal/history"
)

type mode int

const (
	normalMode mode = iota
	commandMode
	finderMode
)

// Options are the settings the model takes from config and saved state.
type Options struct {
	Input         config.InputMode
	TouchDrop     bool
	CardWidth     int
	StatusTTL     time.Duration
	FocusedColumn int
	FocusedCard   int
}

type Model struct {
	store   *board.Store
	drag    *drag.Controller
	history *history.History
	opts    Options

	mode            mode
	focusedColumn   int
	columnCardFocus []int
	// columnOffset is the index of the first card drawn in each column.
	columnOffset []int
	// hoverColumn is the drop target under the pointer, -1 when none.
	hoverColumn int

	textInput     textinput.Model
	finder        FinderModel
	statusMessage string
	statusSeq     int

	width  int
	height int
}

type clearStatusMsg struct{ seq int }

func NewModel(store *board.Store, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = ":"
	ti.ShowSuggestions = true
	ti.SetSuggestions(commandSuggestions())

	m := Model{
		store:           store,
		drag:            drag.New(store),
		history:         history.New(),
		opts:            opts,
		columnCardFocus: make([]int, len(column.All())),
		columnOffset:    make([]int, len(column.All())),
		hoverColumn:     -1,
		textInput:       ti,
		finder:          NewFinderModel(),
	}
	m.focusedColumn = opts.FocusedColumn
	m.clampFocusedColumn()
	m.setCurrentFocusedCard(opts.FocusedCard)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.scrollToFocus()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.finder.SetSize(msg.Width, msg.Height)
		return nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.statusMessage = ""
		}
		return nil

	case finderCardSelectedMsg:
		m.mode = normalMode
		m.finder.Blur()
		m.focusCard(msg.id)
		return nil

	case finderCancelledMsg:
		m.mode = normalMode
		m.finder.Blur()
		return nil

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	var cmd tea.Cmd
	switch m.mode {
	case normalMode:
		cmd = m.updateNormalMode(msg)
	case commandMode:
		cmd = m.updateCommandMode(msg)
	case finderMode:
		m.finder, cmd = m.finder.Update(msg)
	}
	return cmd
}

func (m *Model) View() string {
	if m.mode == finderMode {
		return m.finder.View()
	}
	return renderBoard(m)
}

// FocusedColumn and FocusedCard are saved between sessions.
func (m *Model) FocusedColumn() int {
	return m.focusedColumn
}

func (m *Model) FocusedCard() int {
	return m.currentFocusedCard()
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMessage = msg
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(m.opts.StatusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) focusedColumnID() column.ID {
	return column.All()[m.focusedColumn]
}

func (m *Model) currentFocusedCard() int {
	return m.columnCardFocus[m.focusedColumn]
}

func (m *Model) setCurrentFocusedCard(i int) {
	m.columnCardFocus[m.focusedColumn] = i
	m.clampFocusedCard()
}

func (m *Model) clampFocusedColumn() {
	if m.focusedColumn < 0 {
		m.focusedColumn = 0
	}
	if last := len(column.All()) - 1; m.focusedColumn > last {
		m.focusedColumn = last
	}
}

// clampFocusedCard keeps every column's focus inside its card count.
func (m *Model) clampFocusedCard() {
	for i, col := range column.All() {
		n := m.store.Count(col)
		if m.columnCardFocus[i] >= n {
			m.columnCardFocus[i] = n - 1
		}
		if m.columnCardFocus[i] < 0 {
			m.columnCardFocus[i] = 0
		}
	}
}

// focusedCardID returns the id of the focused card, if the column has one.
func (m *Model) focusedCardID() (string, bool) {
	cards := m.store.ByColumn(m.focusedColumnID())
	i := m.currentFocusedCard()
	if i >= len(cards) {
		return "", false
	}
	return cards[i].ID, true
}

// focusCard moves the focus to the card with id wherever it is.
func (m *Model) focusCard(id string) {
	for colIdx, col := range column.All() {
		for cardIdx, c := range m.store.ByColumn(col) {
			if c.ID == id {
				m.focusedColumn = colIdx
				m.columnCardFocus[colIdx] = cardIdx
				return
			}
		}
	}
}
