// Package input turns SDL2 events into the few interactions the plot
// window supports: closing, resizing, key presses, drag and scroll.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed input event.
type EventType int

const (
	EventNone EventType = iota
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseWheel
)

// Event is one processed input event. Only the fields relevant to Type are
// set.
type Event struct {
	Type   EventType
	Key    sdl.Scancode // EventKeyDown
	Width  int          // EventWindowResize, in screen coordinates
	Height int
	DX, DY int     // EventMouseMove, relative motion
	Wheel  float32 // EventMouseWheel, positive away from the user
}

// Input collects the events of one poll and tracks held mouse buttons.
type Input struct {
	events  []Event
	buttons uint32 // bit (button-1) set while held
}

// New creates an input handler.
func New() *Input {
	return &Input{events: make([]Event, 0, 16)}
}

// Update drains the SDL queue. It reports whether the window was asked to
// close; the remaining events are still collected.
func (in *Input) Update() (quit bool) {
	in.events = in.events[:0]

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.WindowEvent:
			in.window(e)
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				in.emit(Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			}
		case *sdl.MouseMotionEvent:
			in.emit(Event{Type: EventMouseMove, DX: int(e.XRel), DY: int(e.YRel)})
		case *sdl.MouseButtonEvent:
			in.button(e.Button, e.Type == sdl.MOUSEBUTTONDOWN)
		case *sdl.MouseWheelEvent:
			in.wheel(e)
		}
	}
	return quit
}

func (in *Input) emit(e Event) {
	in.events = append(in.events, e)
}

func (in *Input) window(e *sdl.WindowEvent) {
	switch e.Event {
	case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
		in.emit(Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)})
	case sdl.WINDOWEVENT_FOCUS_LOST:
		// Button-up events are not delivered to an unfocused window.
		in.buttons = 0
	}
}

func (in *Input) button(b uint8, down bool) {
	if b == 0 || b > 32 {
		return
	}
	if down {
		in.buttons |= 1 << (b - 1)
	} else {
		in.buttons &^= 1 << (b - 1)
	}
}

func (in *Input) wheel(e *sdl.MouseWheelEvent) {
	dy := float32(e.Y)
	if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
		dy = -dy
	}
	if dy != 0 {
		in.emit(Event{Type: EventMouseWheel, Wheel: dy})
	}
}

// Events returns the events collected by the last Update.
func (in *Input) Events() []Event {
	return in.events
}

// IsButtonDown reports whether a mouse button is currently held.
func (in *Input) IsButtonDown(button uint8) bool {
	if button == 0 || button > 32 {
		return false
	}
	return in.buttons&(1<<(button-1)) != 0
}
