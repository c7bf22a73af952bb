// Package drag tracks the card being moved by a pointer drag or a touch
// gesture and hands completed drops to the board store.
package drag

import (
	"github.com/rs/zerolog/log"
	"taskboard/internal/column"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Source is the input that started the current drag session.
type Source int

const (
	SourceNone Source = iota
	SourcePointer
	SourceTouch
)

func (s Source) String() string {
	switch s {
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	default:
		return "none"
	}
}

type Point struct {
	X, Y int
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

type Cursor string

const (
	CursorGrab     Cursor = "grab"
	CursorGrabbing Cursor = "grabbing"
)

// Feedback is the cosmetic state of the dragged element.
type Feedback struct {
	Opacity   float64
	Cursor    Cursor
	Translate Point
}

var restFeedback = Feedback{Opacity: 1, Cursor: CursorGrab}

// Reassigner is the store operation a drop completes into.
type Reassigner interface {
	ReassignColumn(id string, col column.ID) (bool, error)
}

// Controller holds the state of at most one drag session.
type Controller struct {
	store      Reassigner
	draggedID  string
	source     Source
	touchStart Point
	feedback   Feedback
}

func New(store Reassigner) *Controller {
	return &Controller{store: store, feedback: restFeedback}
}

func (c *Controller) State() State {
	if c.draggedID == "" {
		return Idle
	}
	return Dragging
}

// DraggedID returns the id captured at drag start.
func (c *Controller) DraggedID() (string, bool) {
	return c.draggedID, c.draggedID != ""
}

func (c *Controller) Source() Source {
	return c.source
}

func (c *Controller) Feedback() Feedback {
	return c.feedback
}

// DragStart begins a pointer drag of id. A session already in progress is
// replaced.
func (c *Controller) DragStart(id string) {
	if id == "" {
		return
	}
	c.begin(id, SourcePointer)
	log.Debug().Str("card", id).Msg("drag start")
}

// DragEnd finishes a pointer drag. Safe to call when idle.
func (c *Controller) DragEnd() {
	if c.draggedID != "" {
		log.Debug().Str("card", c.draggedID).Msg("drag end")
	}
	c.reset()
}

// Drop assigns the dragged card to col. It does not end the session; the
// host fires DragEnd (or TouchEnd) after it. Dropping while idle does nothing.
func (c *Controller) Drop(col column.ID) (bool, error) {
	if c.draggedID == "" {
		return false, nil
	}
	log.Debug().Str("card", c.draggedID).Str("column", string(col)).Msg("drop")
	return c.store.ReassignColumn(c.draggedID, col)
}

// TouchStart begins a touch drag of id at p. An empty id, as captured by a
// touch that starts on the column background, leaves the controller idle.
func (c *Controller) TouchStart(id string, p Point) {
	if id == "" {
		c.reset()
		return
	}
	c.begin(id, SourceTouch)
	c.touchStart = p
	log.Debug().Str("card", id).Int("x", p.X).Int("y", p.Y).Msg("touch start")
}

// TouchMove updates the visual translation from the touch start point. It
// reports false when no touch drag is active.
func (c *Controller) TouchMove(p Point) (Point, bool) {
	if c.draggedID == "" || c.source != SourceTouch {
		return Point{}, false
	}
	c.feedback.Translate = p.Sub(c.touchStart)
	return c.feedback.Translate, true
}

// TouchEnd finishes a touch drag and resets the translation. It never
// changes a card's column.
func (c *Controller) TouchEnd() {
	if c.draggedID == "" {
		return
	}
	log.Debug().Str("card", c.draggedID).Msg("touch end")
	c.reset()
}

func (c *Controller) begin(id string, src Source) {
	c.draggedID = id
	c.source = src
	c.touchStart = Point{}
	c.feedback = Feedback{Opacity: 0.5, Cursor: CursorGrabbing}
}

func (c *Controller) reset() {
	c.draggedID = ""
	c.source = SourceNone
	c.touchStart = Point{}
	c.feedback = restFeedback
}
