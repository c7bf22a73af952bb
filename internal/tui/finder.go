// internal/tui/finder.go
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"taskboard/internal/card"
	"taskboard/internal/column"
)

type finderCardSelectedMsg struct{ id string }
type finderCancelledMsg struct{}

type FinderItem struct {
	Card  card.Card
	Label string
}

type itemSource []FinderItem

func (s itemSource) String(i int) string {
	return s[i].Card.Title
}

func (s itemSource) Len() int {
	return len(s)
}

var (
	finderPopupStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62"))

	finderPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205"))

	finderSelectedItemStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("229"))

	finderMatchedCharStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Underline(true)
)

type FinderModel struct {
	textinput     textinput.Model
	viewport      viewport.Model
	items         itemSource
	matches       fuzzy.Matches
	selectedIndex int
	width         int
	height        int
}

func NewFinderModel() FinderModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Find a card..."
	ti.PromptStyle = finderPromptStyle

	return FinderModel{
		textinput: ti,
		width:     80,
		height:    24,
	}
}

func (m *FinderModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *FinderModel) SetItems(items []FinderItem) {
	m.items = items
	m.filter()
}

func (m *FinderModel) Focus() tea.Cmd {
	m.textinput.SetValue("")
	m.filter()
	return m.textinput.Focus()
}

func (m *FinderModel) Blur() {
	m.textinput.Blur()
	m.textinput.SetValue("")
}

func (m FinderModel) Update(msg tea.Msg) (FinderModel, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEscape, tea.KeyCtrlC:
			return m, func() tea.Msg { return finderCancelledMsg{} }

		case tea.KeyEnter:
			if len(m.matches) > 0 {
				selected := m.items[m.matches[m.selectedIndex].Index]
				return m, func() tea.Msg { return finderCardSelectedMsg{id: selected.Card.ID} }
			}
			return m, func() tea.Msg { return finderCancelledMsg{} }

		case tea.KeyDown, tea.KeyCtrlN:
			if m.selectedIndex < len(m.matches)-1 {
				m.selectedIndex++
			} else {
				m.selectedIndex = 0
			}
			return m, nil

		case tea.KeyUp, tea.KeyCtrlP:
			if m.selectedIndex > 0 {
				m.selectedIndex--
			} else if len(m.matches) > 0 {
				m.selectedIndex = len(m.matches) - 1
			}
			return m, nil
		}
	}

	prev := m.textinput.Value()
	m.textinput, cmd = m.textinput.Update(msg)
	if m.textinput.Value() != prev {
		m.filter()
	}
	return m, cmd
}

// filter matches the query against card titles. An empty query lists every card.
func (m *FinderModel) filter() {
	m.selectedIndex = 0
	query := m.textinput.Value()
	if query == "" {
		m.matches = make(fuzzy.Matches, 0, len(m.items))
		for i := range m.items {
			m.matches = append(m.matches, fuzzy.Match{Str: m.items[i].Card.Title, Index: i})
		}
		return
	}
	m.matches = fuzzy.FindFrom(query, m.items)
}

func (m FinderModel) renderResults() string {
	var b strings.Builder
	for i, match := range m.matches {
		item := m.items[match.Index]

		line := "  "
		if i == m.selectedIndex {
			line = "> "
		}

		matchedIndexes := make(map[int]struct{}, len(match.MatchedIndexes))
		for _, idx := range match.MatchedIndexes {
			matchedIndexes[idx] = struct{}{}
		}

		var title strings.Builder
		for charIdx, char := range item.Card.Title {
			if _, ok := matchedIndexes[charIdx]; ok {
				title.WriteString(finderMatchedCharStyle.Render(string(char)))
			} else {
				title.WriteRune(char)
			}
		}

		line += fmt.Sprintf("%s [%s]", title.String(), item.Label)

		if i == m.selectedIndex {
			b.WriteString(finderSelectedItemStyle.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteRune('\n')
	}
	return b.String()
}

func (m FinderModel) View() string {
	popupWidth := int(float64(m.width) * 0.8)
	if popupWidth > 120 {
		popupWidth = 120
	}
	popupHeight := int(float64(m.height) * 0.6)

	m.viewport.Width = popupWidth - 4
	m.viewport.Height = popupHeight - 3
	m.viewport.SetContent(m.renderResults())
	if m.selectedIndex >= m.viewport.Height {
		m.viewport.SetYOffset(m.selectedIndex - m.viewport.Height + 1)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, "Find Card", m.viewport.View(), m.textinput.View())
	popup := finderPopupStyle.Width(popupWidth).Height(popupHeight).Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, popup)
}

func (m *Model) openFinder() tea.Cmd {
	var items []FinderItem
	for _, col := range column.All() {
		for _, c := range m.store.ByColumn(col) {
			items = append(items, FinderItem{Card: c, Label: col.Label()})
		}
	}
	m.finder.SetItems(items)
	m.statusMessage = ""
	m.mode = finderMode
	return m.finder.Focus()
}
