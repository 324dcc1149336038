package controller

import (
	"github.com/mithrel/gyani/internal/render"
)

// PlaceholderText fills the display region before anything is generated.
const PlaceholderText = "Your generated research content will appear here..."

// RegionState says what the display region currently shows.
type RegionState int

const (
	StatePlaceholder RegionState = iota
	StateContent
	StateError
)

func (s RegionState) String() string {
	switch s {
	case StatePlaceholder:
		return "placeholder"
	case StateContent:
		return "content"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Region is the output area. Content fields are set only in StateContent,
// Message only in StateError.
type Region struct {
	State     RegionState
	ModelID   string
	ModelName string
	Raw       string
	Content   render.Fragment
	Message   string
}

func placeholder() Region { return Region{State: StatePlaceholder} }

// HasContent reports whether generated content is on display.
func (r Region) HasContent() bool { return r.State == StateContent }

// PlainText is the visible text of the rendered content, without the
// header. It is empty unless the region holds content.
func (r Region) PlainText() string {
	if r.State != StateContent {
		return ""
	}
	return r.Content.PlainText()
}

// Text returns whatever the region shows, as plain text.
func (r Region) Text() string {
	switch r.State {
	case StateContent:
		return r.Content.PlainText()
	case StateError:
		return r.Message
	default:
		return PlaceholderText
	}
}
