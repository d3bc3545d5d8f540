// input_event.go - Raw backend events, engine events and the input queue

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "fmt"

// RawEventKind describes the kind of raw backend event.
type RawEventKind uint8

const (
	RawNone RawEventKind = iota
	RawKeyDown
	RawKeyUp
	RawMouseButtonDown
	RawMouseButtonUp
	RawMouseWheel
	RawQuit
	RawFocusGained
	RawFocusLost
	RawExposed
	RawResized
	RawPaste
)

func (k RawEventKind) String() string {
	switch k {
	case RawNone:
		return "None"
	case RawKeyDown:
		return "KeyDown"
	case RawKeyUp:
		return "KeyUp"
	case RawMouseButtonDown:
		return "MouseButtonDown"
	case RawMouseButtonUp:
		return "MouseButtonUp"
	case RawMouseWheel:
		return "MouseWheel"
	case RawQuit:
		return "Quit"
	case RawFocusGained:
		return "FocusGained"
	case RawFocusLost:
		return "FocusLost"
	case RawExposed:
		return "Exposed"
	case RawResized:
		return "Resized"
	case RawPaste:
		return "Paste"
	default:
		return fmt.Sprintf("RawEventKind(%d)", uint8(k))
	}
}

// KeyMods represents currently active keyboard modifiers.
type KeyMods uint8

const (
	ModShift KeyMods = 1 << iota
	ModCtrl
	ModAlt
)

// RawEvent is one event as delivered by a video backend, before translation.
type RawEvent struct {
	Kind     RawEventKind
	Scancode Scancode
	Sym      rune    // layout-dependent key symbol, lower case for letters
	Mods     KeyMods // modifiers held when the key event occurred
	Button   int     // 1=left 2=middle 3=right 4..8 extra
	WheelY   int
	Width    int // RawResized
	Height   int // RawResized
	Text     string
}

// EventType tags an engine event.
type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventMouseButton
	EventMouseWheel
	EventMouseMotion
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventMouseButton:
		return "MouseButton"
	case EventMouseWheel:
		return "MouseWheel"
	case EventMouseMotion:
		return "MouseMotion"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is a normalized input event handed to the game layer.
//
//	KeyDown/KeyUp: Data1 = engine key, Data2 = printable character or 0
//	MouseButton:   Data1 = pressed button mask
//	MouseWheel:    Data1 = wheel delta
//	MouseMotion:   Data1 = pressed button mask, Data2 = dx, Data3 = dy
type Event struct {
	Type  EventType
	Data1 int
	Data2 int
	Data3 int
}

// EventSink receives normalized events.
type EventSink interface {
	PostEvent(ev Event)
}

// EventQueue is a FIFO of events, drained completely by the consumer each tick.
type EventQueue struct {
	events []Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]Event, 0, 64)}
}

func (q *EventQueue) PostEvent(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events in posting order and empties the queue.
// The returned slice belongs to the caller.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}
