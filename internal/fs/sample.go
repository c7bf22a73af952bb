package fs

import (
	"taskboard/internal/card"
	"taskboard/internal/column"
)

// SampleCards is the board shown when no card source exists yet.
func SampleCards() []card.Card {
	return []card.Card{
		{
			ID:          "1",
			Title:       "Brainstorming",
			Description: "Brainstorming brings team members' diverse experience into play.",
			Column:      column.Todo,
			Priority:    card.PriorityLow,
			Comments:    12,
			Files:       0,
			Assignees:   []card.Assignee{{Avatar: "avatars/anna.png"}, {Avatar: "avatars/ben.png"}, {Avatar: "avatars/chloe.png"}},
		},
		{
			ID:          "2",
			Title:       "Research",
			Description: "User research helps you to create an optimal product for users.",
			Column:      column.Todo,
			Priority:    card.PriorityHigh,
			Comments:    10,
			Files:       3,
			Assignees:   []card.Assignee{{Avatar: "avatars/dev.png"}, {Avatar: "avatars/ella.png"}},
		},
		{
			ID:          "3",
			Title:       "Wireframes",
			Description: "Low fidelity wireframes include the most basic content and visuals.",
			Column:      column.Todo,
			Priority:    card.PriorityHigh,
			Comments:    3,
			Files:       1,
			Assignees:   []card.Assignee{{Avatar: "avatars/anna.png"}, {Avatar: "avatars/finn.png"}},
		},
		{
			ID:        "4",
			Title:     "Onboarding Illustrations",
			Column:    column.Progress,
			Priority:  card.PriorityLow,
			Comments:  14,
			Files:     15,
			Images:    []card.Image{{Src: "images/onboarding.png"}},
			Assignees: []card.Assignee{{Avatar: "avatars/ben.png"}, {Avatar: "avatars/gia.png"}, {Avatar: "avatars/hal.png"}},
		},
		{
			ID:        "5",
			Title:     "Moodboard",
			Column:    column.Progress,
			Priority:  card.PriorityLow,
			Comments:  9,
			Files:     10,
			Images:    []card.Image{{Src: "images/mood-1.png"}, {Src: "images/mood-2.png"}},
			Assignees: []card.Assignee{{Avatar: "avatars/chloe.png"}},
		},
		{
			ID:        "6",
			Title:     "Mobile App Design",
			Column:    column.Completed,
			Comments:  12,
			Files:     15,
			Images:    []card.Image{{Src: "images/mobile.png"}},
			Assignees: []card.Assignee{{Avatar: "avatars/dev.png"}, {Avatar: "avatars/ella.png"}},
		},
		{
			ID:          "7",
			Title:       "Design System",
			Description: "It just needs to adapt the UI from what you did before.",
			Column:      column.Completed,
			Comments:    12,
			Files:       15,
			Assignees:   []card.Assignee{{Avatar: "avatars/finn.png"}, {Avatar: "avatars/gia.png"}, {Avatar: "avatars/hal.png"}},
		},
	}
}
