// Package input turns SDL2 events into the pointer and key events the
// viewer routes to the widget.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseLeave
)

// Event represents a processed input event. Mouse coordinates are in
// window pixels.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX float32
	MouseY float32
	Button uint8
}

// Input collects the events of one poll.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update drains the SDL queue. It returns true once a quit was requested.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		ev, ok := translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, ev)
		if ev.Type == EventQuit {
			return true
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// translate maps one SDL event to an Event. Releases and other events the
// viewer has no use for report false.
func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		case sdl.WINDOWEVENT_LEAVE:
			return Event{Type: EventMouseLeave}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{
				Type: EventKeyDown,
				Key:  e.Keysym.Scancode,
			}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: float32(e.X),
			MouseY: float32(e.Y),
		}, true

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return Event{
				Type:   EventMouseDown,
				MouseX: float32(e.X),
				MouseY: float32(e.Y),
				Button: e.Button,
			}, true
		}
	}
	return Event{}, false
}
