// video_backend_headless.go - Scripted video backend without a display

package main

import (
	"errors"
	"fmt"
)

// HeadlessBackend is a windowless backend. Events, pointer motion and key
// state are scripted by the caller; failures can be injected per resource.
type HeadlessBackend struct {
	desktopWidth  int
	desktopHeight int
	modes         []DisplayMode

	InitErr    error
	WindowErr  error
	TextureErr error
	ResizeErr  error
	// MaxFrames bounds Run; zero runs until the loop returns ErrQuit.
	MaxFrames int

	initialized    bool
	events         []RawEvent
	relX, relY     int
	pointerX       int
	pointerY       int
	pointerVisible bool
	relative       bool
	focused        bool
	shown          bool
	keys           map[Scancode]bool

	window *headlessWindow

	WindowsCreated    int
	WindowsDestroyed  int
	TexturesCreated   int
	TexturesDestroyed int
	MaxLiveTextures   int
	Frames            int
}

func NewHeadlessBackend(desktopWidth, desktopHeight int) *HeadlessBackend {
	return &HeadlessBackend{
		desktopWidth:   desktopWidth,
		desktopHeight:  desktopHeight,
		modes:          []DisplayMode{{desktopWidth, desktopHeight}, {1280, 720}, {640, 480}},
		pointerVisible: true,
		focused:        true,
		shown:          true,
		keys:           make(map[Scancode]bool),
	}
}

func (b *HeadlessBackend) Name() string { return VIDEO_BACKEND_HEADLESS }

func (b *HeadlessBackend) Init(driver string) error {
	if b.InitErr != nil {
		return b.InitErr
	}
	b.initialized = true
	return nil
}

func (b *HeadlessBackend) Shutdown() {
	b.initialized = false
}

func (b *HeadlessBackend) DesktopBounds() (int, int, error) {
	if !b.initialized {
		return 0, 0, errors.New("headless backend not initialized")
	}
	return b.desktopWidth, b.desktopHeight, nil
}

func (b *HeadlessBackend) DisplayModes() ([]DisplayMode, error) {
	return append([]DisplayMode(nil), b.modes...), nil
}

func (b *HeadlessBackend) CreateWindow(spec WindowSpec) (VideoWindow, error) {
	if b.WindowErr != nil {
		return nil, b.WindowErr
	}
	if b.window != nil {
		return nil, fmt.Errorf("window already exists")
	}
	w := &headlessWindow{backend: b, spec: spec, width: spec.Width, height: spec.Height}
	if spec.Fullscreen {
		w.width, w.height = b.desktopWidth, b.desktopHeight
	}
	b.window = w
	b.WindowsCreated++
	return w, nil
}

func (b *HeadlessBackend) PollEvent() (RawEvent, bool) {
	if len(b.events) == 0 {
		return RawEvent{}, false
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, true
}

func (b *HeadlessBackend) RelativeMouseState() (int, int) {
	dx, dy := b.relX, b.relY
	b.relX, b.relY = 0, 0
	return dx, dy
}

func (b *HeadlessBackend) KeyboardState(sc Scancode) bool {
	return b.keys[sc]
}

func (b *HeadlessBackend) SetPointerVisible(visible bool) { b.pointerVisible = visible }

func (b *HeadlessBackend) SetRelativeMode(enabled bool) { b.relative = enabled }

func (b *HeadlessBackend) Run(loop FrameLoop) error {
	for b.MaxFrames == 0 || b.Frames < b.MaxFrames {
		if err := loop.Update(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		loop.Draw()
		b.Frames++
	}
	return nil
}

// PushEvent queues a raw event for the next PollEvent.
func (b *HeadlessBackend) PushEvent(ev RawEvent) {
	b.events = append(b.events, ev)
}

// PushKey queues a key press or release with its US-layout symbol.
func (b *HeadlessBackend) PushKey(sc Scancode, down bool, mods KeyMods) {
	kind := RawKeyUp
	if down {
		kind = RawKeyDown
	}
	b.keys[sc] = down
	b.PushEvent(RawEvent{Kind: kind, Scancode: sc, Sym: usSymFor(headlessKeys, sc), Mods: mods})
}

// PushMotion moves the pointer by dx, dy.
func (b *HeadlessBackend) PushMotion(dx, dy int) {
	b.relX += dx
	b.relY += dy
	b.pointerX += dx
	b.pointerY += dy
}

// SetFocused changes window focus and queues the matching event.
func (b *HeadlessBackend) SetFocused(focused bool) {
	b.focused = focused
	if focused {
		b.PushEvent(RawEvent{Kind: RawFocusGained})
	} else {
		b.PushEvent(RawEvent{Kind: RawFocusLost})
	}
}

// SetShown changes window visibility.
func (b *HeadlessBackend) SetShown(shown bool) {
	b.shown = shown
	if shown {
		b.PushEvent(RawEvent{Kind: RawExposed})
	}
}

func (b *HeadlessBackend) PointerVisible() bool { return b.pointerVisible }

func (b *HeadlessBackend) RelativeMode() bool { return b.relative }

func (b *HeadlessBackend) Pointer() (int, int) { return b.pointerX, b.pointerY }

func (b *HeadlessBackend) Window() *headlessWindow { return b.window }

var headlessKeys = NewKeyTable()

type headlessWindow struct {
	backend *HeadlessBackend
	spec    WindowSpec
	width   int
	height  int

	logicalWidth  int
	logicalHeight int
	title         string
	textures      int
	presents      int
	lastSource    Rect
	lastFrame     []byte
	overlay       string
	destroyed     bool
}

func (w *headlessWindow) Size() (int, int) { return w.width, w.height }

func (w *headlessWindow) Flags() WindowFlags {
	var f WindowFlags
	if w.backend.shown {
		f |= WindowShown
	}
	if w.backend.focused {
		f |= WindowInputFocus
	}
	return f
}

func (w *headlessWindow) SetSize(width, height int) error {
	if w.backend.ResizeErr != nil {
		return w.backend.ResizeErr
	}
	w.width, w.height = width, height
	return nil
}

func (w *headlessWindow) SetTitle(title string) { w.title = title }

func (w *headlessWindow) SetLogicalSize(width, height int) {
	w.logicalWidth, w.logicalHeight = width, height
}

// WarpPointer moves the pointer and, like a real window system, reports
// the jump as relative motion.
func (w *headlessWindow) WarpPointer(x, y int) {
	b := w.backend
	b.relX += x - b.pointerX
	b.relY += y - b.pointerY
	b.pointerX, b.pointerY = x, y
}

func (w *headlessWindow) CreateTexture(width, height int) (VideoTexture, error) {
	b := w.backend
	if b.TextureErr != nil {
		return nil, b.TextureErr
	}
	b.TexturesCreated++
	w.textures++
	b.MaxLiveTextures = max(b.MaxLiveTextures, b.TexturesCreated-b.TexturesDestroyed)
	return &headlessTexture{window: w, width: width, height: height, pixels: make([]byte, width*height*4)}, nil
}

func (w *headlessWindow) Clear() {}

func (w *headlessWindow) Present(tex VideoTexture, src Rect) error {
	t, ok := tex.(*headlessTexture)
	if !ok || t.destroyed {
		return fmt.Errorf("present with invalid texture")
	}
	w.presents++
	w.lastSource = src
	w.lastFrame = append(w.lastFrame[:0], t.pixels...)
	return nil
}

func (w *headlessWindow) SetOverlayText(text string) { w.overlay = text }

func (w *headlessWindow) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	b := w.backend
	if b.window == w {
		b.window = nil
	}
	b.WindowsDestroyed++
}

type headlessTexture struct {
	window    *headlessWindow
	width     int
	height    int
	pixels    []byte
	destroyed bool
}

func (t *headlessTexture) Update(pixels []byte, pitch int) error {
	if t.destroyed {
		return fmt.Errorf("update of destroyed texture")
	}
	if pitch != t.width*4 || len(pixels) < t.width*t.height*4 {
		return fmt.Errorf("texture update: pitch %d, %d bytes for %dx%d", pitch, len(pixels), t.width, t.height)
	}
	copy(t.pixels, pixels)
	return nil
}

func (t *headlessTexture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.window.backend.TexturesDestroyed++
}
