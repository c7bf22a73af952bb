package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"taskboard/internal/card"
	"taskboard/internal/column"
	"taskboard/internal/drag"
)

var (
	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#0d062d"))

	countBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#625F6D")).
			Background(lipgloss.Color("#e0e0e0")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Margin(0, 1)

	focusedCardStyle = cardStyle.Copy().
				BorderForeground(lipgloss.Color("205"))

	draggedCardStyle = cardStyle.Copy().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("205")).
				Faint(true)

	titleStyle = lipgloss.NewStyle().Bold(true)

	descriptionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	metaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	emptyColumnStyle = lipgloss.NewStyle().
				Faint(true).
				Padding(1, 2)

	columnStyle = lipgloss.NewStyle().
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var badgeColors = map[string]lipgloss.Color{
	"Completed": lipgloss.Color("#68B266"),
	"Low":       lipgloss.Color("#D58D49"),
	"High":      lipgloss.Color("#D8727D"),
}

// headerHeight is the label line plus the rule under it.
const headerHeight = 2

type cardRegion struct {
	id string
	// index is the card's position in its column, not on screen.
	index  int
	top    int
	bottom int
}

type columnRegion struct {
	col   column.ID
	left  int
	right int
	cards []cardRegion
}

func renderBoard(m *Model) string {
	var renderedColumns []string
	for i, col := range column.All() {
		block, _ := renderColumn(m, col, i)
		renderedColumns = append(renderedColumns, block)
	}
	boardView := lipgloss.JoinHorizontal(lipgloss.Top, renderedColumns...)
	return lipgloss.JoinVertical(lipgloss.Left, boardView, renderStatus(m))
}

// layout returns the screen rectangles of every column and card, measured
// from the same rendering the view uses.
func (m *Model) layout() []columnRegion {
	regions := make([]columnRegion, 0, len(column.All()))
	x := 0
	for i, col := range column.All() {
		block, cards := renderColumn(m, col, i)
		w := lipgloss.Width(block)
		regions = append(regions, columnRegion{col: col, left: x, right: x + w, cards: cards})
		x += w
	}
	return regions
}

func (m *Model) columnWidth() int {
	// card content width + card border + card margin + column padding
	return m.opts.CardWidth + 2 + 2 + 2
}

// bodyHeight is the number of rows left for cards below the column header
// and above the status line. Zero means the terminal size is not known yet.
func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - headerHeight - 1
	if h < 1 {
		h = 1
	}
	return h
}

// renderColumn draws the cards from the column's scroll offset that fit in
// the body height. Only drawn cards get a region.
func renderColumn(m *Model, col column.ID, columnIndex int) (string, []cardRegion) {
	hovered := m.hoverColumn == columnIndex
	innerWidth := m.columnWidth() - 2
	header := renderHeader(col, m.store.Count(col), hovered)
	rule := renderRule(col, innerWidth, hovered)

	cards := m.store.ByColumn(col)
	avail := m.bodyHeight()
	offset := m.columnOffset[columnIndex]
	if offset >= len(cards) {
		offset = 0
	}

	var renderedCards []string
	regions := make([]cardRegion, 0, len(cards))
	y := headerHeight
	for i := offset; i < len(cards); i++ {
		block := renderCard(m, cards[i], columnIndex, i)
		h := lipgloss.Height(block)
		if avail > 0 && y-headerHeight+h > avail {
			break
		}
		regions = append(regions, cardRegion{id: cards[i].ID, index: i, top: y, bottom: y + h})
		y += h
		renderedCards = append(renderedCards, block)
	}

	body := strings.Join(renderedCards, "\n")
	if len(cards) == 0 {
		body = emptyColumnStyle.Render("No cards")
		if avail > 0 && lipgloss.Height(body) > avail {
			body = ""
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, rule, body)
	return columnStyle.Width(m.columnWidth()).Render(content), regions
}

// scrollToFocus moves each column's offset so its focused card is drawn,
// and pulls it back up when the cards below leave room.
func (m *Model) scrollToFocus() {
	avail := m.bodyHeight()
	for i, col := range column.All() {
		cards := m.store.ByColumn(col)
		if avail == 0 || len(cards) == 0 {
			m.columnOffset[i] = 0
			continue
		}

		heights := make([]int, len(cards))
		for j, c := range cards {
			heights[j] = lipgloss.Height(renderCard(m, c, i, j))
		}

		off := min(m.columnOffset[i], len(cards)-1)
		focus := m.columnCardFocus[i]
		if focus < off {
			off = focus
		}
		for off < focus && sumHeights(heights[off:focus+1]) > avail {
			off++
		}
		for off > 0 && sumHeights(heights[off-1:]) <= avail {
			off--
		}
		m.columnOffset[i] = off
	}
}

func sumHeights(heights []int) int {
	total := 0
	for _, h := range heights {
		total += h
	}
	return total
}

func renderHeader(col column.ID, count int, hovered bool) string {
	dot := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Accent())).Render("●")
	label := columnHeaderStyle.Copy()
	if hovered {
		label = label.Reverse(true)
	}
	return fmt.Sprintf("%s %s %s", dot, label.Render(col.Label()), countBadgeStyle.Render(fmt.Sprint(count)))
}

func renderRule(col column.ID, width int, hovered bool) string {
	ch := "─"
	if hovered {
		ch = "━"
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(col.Rule())).
		Render(strings.Repeat(ch, width))
}

func renderCard(m *Model, c card.Card, columnIndex, cardIndex int) string {
	draggedID, dragging := m.drag.DraggedID()
	isDragged := dragging && draggedID == c.ID
	isFocused := m.focusedColumn == columnIndex && m.currentFocusedCard() == cardIndex

	style := cardStyle
	switch {
	case isDragged:
		style = draggedCardStyle
	case isFocused:
		style = focusedCardStyle
	}

	var lines []string
	if badge := c.Badge(); badge != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(badgeColors[badge]).Render(badge))
	}
	title := c.Title
	if isDragged {
		title = "✥ " + title
	}
	lines = append(lines, titleStyle.Render(title))
	if c.HasDescription() {
		lines = append(lines, descriptionStyle.Render(c.Description))
	}
	for _, img := range c.Images {
		lines = append(lines, metaStyle.Render("▣ "+filepath.Base(img.Src)))
	}
	if len(c.Assignees) > 0 {
		lines = append(lines, renderAssignees(c.Assignees))
	}
	lines = append(lines, metaStyle.Render(fmt.Sprintf("%d comments  %d files", c.Comments, c.Files)))

	return style.Width(m.opts.CardWidth).Render(strings.Join(lines, "\n"))
}

// renderAssignees stacks avatar initials the way overlapping avatars read.
func renderAssignees(assignees []card.Assignee) string {
	initials := make([]string, 0, len(assignees))
	for _, a := range assignees {
		initials = append(initials, a.Initial())
	}
	return "(" + strings.Join(initials, ")(") + ")"
}

func renderStatus(m *Model) string {
	if m.mode == commandMode {
		return m.textInput.View()
	}
	if m.statusMessage != "" {
		return statusStyle.Render(m.statusMessage)
	}
	if id, ok := m.drag.DraggedID(); ok {
		c, _ := m.store.Card(id)
		fb := m.drag.Feedback()
		status := fmt.Sprintf("%s %s (%s)", fb.Cursor, c.Title, m.drag.Source())
		if m.drag.Source() == drag.SourceTouch {
			status += fmt.Sprintf("  offset %+d,%+d", fb.Translate.X, fb.Translate.Y)
		}
		return statusStyle.Render(status)
	}
	return statusStyle.Render("space grab · drag with mouse · u undo · ctrl+p find · : command · q quit")
}
