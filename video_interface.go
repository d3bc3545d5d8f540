// video_interface.go - Video backend interface for the display subsystem

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

import (
	"errors"
	"fmt"
	"time"
)

// VideoError provides detailed error context for video operations
type VideoError struct {
	Operation string // What operation was being attempted
	Details   string // Additional error context
	Err       error  // Underlying error if any
}

func (e *VideoError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("video %s failed: %s: %v", e.Operation, e.Details, e.Err)
	}
	return fmt.Sprintf("video %s failed: %s", e.Operation, e.Details)
}

func (e *VideoError) Unwrap() error {
	return e.Err
}

// ErrQuit is returned from a FrameLoop update to end the backend's main loop.
var ErrQuit = errors.New("quit requested")

// FrameSnapshot encapsulates the data needed to represent a complete frame
type FrameSnapshot struct {
	Buffer    []byte // RGBA pixels, 4 bytes per pixel
	Width     int
	Height    int
	Timestamp time.Time
}

// Rect is a pixel rectangle in back buffer coordinates.
type Rect struct {
	X, Y, W, H int
}

// DisplayMode is one enumerated mode of the primary display.
type DisplayMode struct {
	Width  int
	Height int
}

// WindowFlags reports the visibility and focus state of a window.
type WindowFlags uint32

const (
	WindowShown WindowFlags = 1 << iota
	WindowInputFocus
)

// WindowSpec describes the window, renderer and presentation settings to create.
type WindowSpec struct {
	Title        string
	Width        int
	Height       int
	Fullscreen   bool // borderless desktop fullscreen
	Resizable    bool
	X, Y         int
	Centered     bool
	VSync        bool
	ScaleQuality string // "nearest", "linear" or "best"
}

// VideoBackend is the platform layer: subsystem lifetime, window creation,
// raw event source and pointer control.
type VideoBackend interface {
	Name() string
	Init(driver string) error
	Shutdown()

	DesktopBounds() (width, height int, err error)
	DisplayModes() ([]DisplayMode, error)
	CreateWindow(spec WindowSpec) (VideoWindow, error)

	// PollEvent returns the next pending raw event without blocking.
	PollEvent() (RawEvent, bool)
	// RelativeMouseState returns motion accumulated since the previous call.
	RelativeMouseState() (dx, dy int)
	KeyboardState(sc Scancode) bool
	SetPointerVisible(visible bool)
	SetRelativeMode(enabled bool)

	// Run drives loop once per tick until it returns ErrQuit or the window closes.
	Run(loop FrameLoop) error
}

// VideoWindow owns a window together with its renderer.
type VideoWindow interface {
	Size() (width, height int)
	Flags() WindowFlags
	SetSize(width, height int) error
	SetTitle(title string)
	// SetLogicalSize letterboxes presentation to the given size; 0x0 stretches
	// to the whole window.
	SetLogicalSize(width, height int)
	WarpPointer(x, y int)
	CreateTexture(width, height int) (VideoTexture, error)
	Clear()
	Present(tex VideoTexture, src Rect) error
	Destroy()
}

// VideoTexture is a streaming RGBA texture.
type VideoTexture interface {
	Update(pixels []byte, pitch int) error
	Destroy()
}

// FrameLoop is what a backend drives each tick.
type FrameLoop interface {
	Update() error
	Draw()
}

// Optional interfaces for enhanced functionality
type OverlayCapable interface {
	SetOverlayText(text string)
}

// Predefined video backend names
const (
	VIDEO_BACKEND_EBITEN   = "ebiten"
	VIDEO_BACKEND_SDL      = "sdl"
	VIDEO_BACKEND_HEADLESS = "headless"
)

// NewVideoBackend creates a backend by name; an empty name selects ebiten.
func NewVideoBackend(name string) (VideoBackend, error) {
	switch name {
	case "", VIDEO_BACKEND_EBITEN:
		return NewEbitenBackend()
	case VIDEO_BACKEND_SDL:
		return NewSDLBackend()
	case VIDEO_BACKEND_HEADLESS:
		return NewHeadlessBackend(1920, 1080), nil
	}
	return nil, &VideoError{
		Operation: "backend creation",
		Details:   fmt.Sprintf("unknown backend type: %q", name),
	}
}
