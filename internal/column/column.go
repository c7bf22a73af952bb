package column

import "strings"

// ID identifies one of the fixed workflow stages.
type ID string

const (
	Todo      ID = "todo"
	Progress  ID = "progress"
	Completed ID = "completed"
)

type info struct {
	label  string
	accent string
	rule   string
}

var table = map[ID]info{
	Todo:      {label: "To Do", accent: "#5030e5", rule: "#5030e5"},
	Progress:  {label: "In Progress", accent: "#ffa500", rule: "#ffa500"},
	Completed: {label: "Done", accent: "#76a5ea", rule: "#8bc48a"},
}

var order = []ID{Todo, Progress, Completed}

// All returns the columns in display order.
func All() []ID {
	out := make([]ID, len(order))
	copy(out, order)
	return out
}

func (id ID) Valid() bool {
	_, ok := table[id]
	return ok
}

func (id ID) Label() string {
	return table[id].label
}

// Accent is the color of the dot next to the column label.
func (id ID) Accent() string {
	return table[id].accent
}

// Rule is the color of the line under the column header.
func (id ID) Rule() string {
	return table[id].rule
}

// Index returns the display position of id, or -1 if it is not a known column.
func (id ID) Index() int {
	for i, c := range order {
		if c == id {
			return i
		}
	}
	return -1
}

// Parse accepts an identifier or a label, ignoring case and surrounding space.
func Parse(s string) (ID, bool) {
	s = strings.TrimSpace(s)
	for _, c := range order {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, table[c].label) {
			return c, true
		}
	}
	return "", false
}
