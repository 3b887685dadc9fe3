// Package input translates SDL2 events into view actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/spherewire/internal/view"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
}

// Input handles event polling for one frame at a time.
type Input struct {
	events  []Event
	actions []view.Action
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events:  make([]Event, 0, 16),
		actions: make([]view.Action, 0, 8),
	}
}

// Update polls pending SDL events. Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.actions = i.actions[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			ev := Event{
				Type:   EventKeyDown,
				Key:    e.Keysym.Scancode,
				Repeat: e.Repeat != 0,
			}
			if e.Type == sdl.KEYUP {
				ev.Type = EventKeyUp
			}
			i.events = append(i.events, ev)

			// Only the initial press moves the view; held keys don't repeat.
			if ev.Type == EventKeyDown && !ev.Repeat {
				if a := ActionFor(ev.Key); a != view.ActionNone {
					i.actions = append(i.actions, a)
				}
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Actions returns the view actions triggered during the last Update, in order.
func (i *Input) Actions() []view.Action {
	return i.actions
}

// ActionFor maps a key to its view action.
func ActionFor(key sdl.Scancode) view.Action {
	switch key {
	case sdl.SCANCODE_UP:
		return view.ActionUp
	case sdl.SCANCODE_DOWN:
		return view.ActionDown
	case sdl.SCANCODE_LEFT:
		return view.ActionLeft
	case sdl.SCANCODE_RIGHT:
		return view.ActionRight
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_KP_ENTER:
		return view.ActionForward
	case sdl.SCANCODE_SPACE:
		return view.ActionBackward
	case sdl.SCANCODE_ESCAPE:
		return view.ActionQuit
	default:
		return view.ActionNone
	}
}
