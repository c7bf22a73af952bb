// internal/tui/commands.go
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"taskboard/internal/column"
	"taskboard/internal/config"
)

type commandInfo struct {
	execute        func(m *Model, command, args string) tea.Cmd
	getCompletions func(args string) []string
}

var commandRegistry = make(map[string]commandInfo)

func registerCommand(name string, info commandInfo) {
	commandRegistry[name] = info
}

func init() {
	registerCommand("q", commandInfo{execute: cmdQuit})
	registerCommand("quit", commandInfo{execute: cmdQuit})
	registerCommand("move", commandInfo{
		execute: cmdMove,
		getCompletions: func(args string) []string {
			cols := column.All()
			out := make([]string, 0, len(cols))
			for _, c := range cols {
				out = append(out, string(c))
			}
			return out
		},
	})
	registerCommand("undo", commandInfo{execute: cmdUndo})
	registerCommand("input", commandInfo{
		execute: cmdInput,
		getCompletions: func(args string) []string {
			return []string{string(config.InputPointer), string(config.InputTouch)}
		},
	})
	registerCommand("count", commandInfo{execute: cmdCount})
}

// commandSuggestions lists every command with its argument completions for
// the command line's autocomplete.
func commandSuggestions() []string {
	var out []string
	for name, info := range commandRegistry {
		out = append(out, name)
		if info.getCompletions == nil {
			continue
		}
		for _, arg := range info.getCompletions("") {
			out = append(out, name+" "+arg)
		}
	}
	sort.Strings(out)
	return out
}

func cmdQuit(m *Model, command, args string) tea.Cmd {
	return tea.Quit
}

// cmdMove runs a whole drag session for the focused card: start, drop on the
// named column, end.
func cmdMove(m *Model, command, args string) tea.Cmd {
	col, ok := column.Parse(args)
	if !ok {
		return m.setStatus(fmt.Sprintf("Unknown column: %q", args))
	}
	id, ok := m.focusedCardID()
	if !ok {
		return m.setStatus("No card focused")
	}
	m.drag.DragStart(id)
	cmd := m.dropOn(col)
	m.endDrag()
	return cmd
}

func cmdUndo(m *Model, command, args string) tea.Cmd {
	return m.undo()
}

func cmdInput(m *Model, command, args string) tea.Cmd {
	switch mode := config.InputMode(strings.TrimSpace(args)); mode {
	case config.InputPointer, config.InputTouch:
		m.endDrag()
		m.opts.Input = mode
		return m.setStatus("Input mode: " + string(mode))
	case "":
		return m.setStatus("Input mode is: " + string(m.opts.Input))
	default:
		return m.setStatus(fmt.Sprintf("Invalid input mode: %s. Valid: pointer, touch.", args))
	}
}

func cmdCount(m *Model, command, args string) tea.Cmd {
	parts := make([]string, 0, len(column.All()))
	for _, col := range column.All() {
		parts = append(parts, fmt.Sprintf("%s %d", col.Label(), m.store.Count(col)))
	}
	return m.setStatus(strings.Join(parts, " · "))
}
