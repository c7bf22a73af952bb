package card

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
	"taskboard/internal/column"
)

// Priority's zero value is normal so cards without a priority show no badge.
type Priority int

const (
	PriorityNormal Priority = iota
	PriorityLow
	PriorityHigh
)

// Label is empty for normal priority, which shows no badge.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	default:
		return ""
	}
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityNormal:
		return "normal"
	case PriorityHigh:
		return "high"
	default:
		return strconv.Itoa(int(p))
	}
}

// Number is the priority in the exported data encoding: 0 low, 1 normal, 2 high.
func (p Priority) Number() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityHigh:
		return 2
	default:
		return 1
	}
}

// ParsePriority accepts a name (low, normal, high) or its number (0, 1, 2).
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "0":
		return PriorityLow, nil
	case "normal", "1", "":
		return PriorityNormal, nil
	case "high", "2":
		return PriorityHigh, nil
	}
	return PriorityNormal, fmt.Errorf("unknown priority %q", s)
}

func (p *Priority) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParsePriority(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = parsed
	return nil
}

type Image struct {
	Src string `yaml:"image" json:"image"`
}

type Assignee struct {
	Avatar string `yaml:"avatars" json:"avatars"`
}

// Initial is the upper-cased first letter of the avatar's file name.
func (a Assignee) Initial() string {
	name := strings.TrimSuffix(filepath.Base(a.Avatar), filepath.Ext(a.Avatar))
	if name == "" || name == "." {
		return "?"
	}
	return strings.ToUpper(name[:1])
}

type Card struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description,omitempty"`
	Column      column.ID  `yaml:"column"`
	Priority    Priority   `yaml:"task_priority"`
	Comments    int        `yaml:"comments"`
	Files       int        `yaml:"files"`
	Images      []Image    `yaml:"images,omitempty"`
	Assignees   []Assignee `yaml:"assignees,omitempty"`
}

func New(id, title string, col column.ID) Card {
	return Card{ID: id, Title: title, Column: col, Priority: PriorityNormal}
}

func (c Card) HasDescription() bool {
	return c.Description != ""
}

// Badge is "Completed" for cards in the done column and the priority label otherwise.
func (c Card) Badge() string {
	if c.Column == column.Completed {
		return "Completed"
	}
	return c.Priority.Label()
}

// Clone returns a copy that shares no slices with c.
func (c Card) Clone() Card {
	out := c
	if c.Images != nil {
		out.Images = append([]Image(nil), c.Images...)
	}
	if c.Assignees != nil {
		out.Assignees = append([]Assignee(nil), c.Assignees...)
	}
	return out
}
