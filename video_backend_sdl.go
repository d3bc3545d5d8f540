//go:build sdl && !headless

// video_backend_sdl.go - SDL2 video backend

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
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL wants its video calls on the thread that initialized it.
func init() {
	runtime.LockOSThread()
	compiledFeatures = append(compiledFeatures, "video:sdl")
}

const sdlFrameInterval = time.Second / 60

// SDLBackend talks to SDL2 directly. Unlike ebiten it can warp the OS
// pointer and report true relative motion.
type SDLBackend struct {
	initialized bool
	window      *sdlWindow
	vsync       bool
}

func NewSDLBackend() (VideoBackend, error) {
	return &SDLBackend{}, nil
}

func (sb *SDLBackend) Name() string { return VIDEO_BACKEND_SDL }

func (sb *SDLBackend) Init(driver string) error {
	if driver != "" {
		os.Setenv("SDL_VIDEODRIVER", driver)
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	sb.initialized = true
	return nil
}

func (sb *SDLBackend) Shutdown() {
	if sb.initialized {
		sdl.Quit()
		sb.initialized = false
	}
}

func (sb *SDLBackend) DesktopBounds() (int, int, error) {
	mode, err := sdl.GetDesktopDisplayMode(0)
	if err != nil {
		return 0, 0, err
	}
	return int(mode.W), int(mode.H), nil
}

func (sb *SDLBackend) DisplayModes() ([]DisplayMode, error) {
	n, err := sdl.GetNumDisplayModes(0)
	if err != nil {
		return nil, err
	}
	modes := make([]DisplayMode, 0, n)
	for i := 0; i < n; i++ {
		mode, err := sdl.GetDisplayMode(0, i)
		if err != nil {
			return nil, err
		}
		modes = append(modes, DisplayMode{Width: int(mode.W), Height: int(mode.H)})
	}
	return modes, nil
}

// CreateWindow creates the window, renderer pair. If the renderer cannot be
// created the window is destroyed before returning.
func (sb *SDLBackend) CreateWindow(spec WindowSpec) (VideoWindow, error) {
	quality := spec.ScaleQuality
	if quality == "" {
		quality = "linear"
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, quality)

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_ALLOW_HIGHDPI)
	x, y := int32(spec.X), int32(spec.Y)
	if spec.Centered {
		x, y = int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	}
	if spec.Fullscreen {
		flags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
		x, y = int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	} else if spec.Resizable {
		flags |= uint32(sdl.WINDOW_RESIZABLE)
	}
	window, err := sdl.CreateWindow(spec.Title, x, y, int32(spec.Width), int32(spec.Height), flags)
	if err != nil {
		return nil, err
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED | sdl.RENDERER_TARGETTEXTURE)
	if spec.VSync {
		rendererFlags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	renderer, err := sdl.CreateRenderer(window, -1, rendererFlags)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	sb.vsync = spec.VSync
	sb.window = &sdlWindow{backend: sb, window: window, renderer: renderer}
	return sb.window, nil
}

func (sb *SDLBackend) PollEvent() (RawEvent, bool) {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return RawEvent{}, false
		}
		if ev, ok := translateSDLEvent(event); ok {
			return ev, true
		}
	}
}

func translateSDLEvent(event sdl.Event) (RawEvent, bool) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return RawEvent{}, false
		}
		kind := RawKeyUp
		if e.Type == sdl.KEYDOWN {
			kind = RawKeyDown
		}
		return RawEvent{
			Kind:     kind,
			Scancode: Scancode(e.Keysym.Scancode),
			Sym:      rune(e.Keysym.Sym),
			Mods:     sdlMods(e.Keysym.Mod),
		}, true

	case *sdl.MouseButtonEvent:
		kind := RawMouseButtonUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			kind = RawMouseButtonDown
		}
		return RawEvent{Kind: kind, Button: int(e.Button)}, true

	case *sdl.MouseWheelEvent:
		return RawEvent{Kind: RawMouseWheel, WheelY: int(e.Y)}, true

	case *sdl.QuitEvent:
		return RawEvent{Kind: RawQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return RawEvent{Kind: RawFocusGained}, true
		case sdl.WINDOWEVENT_FOCUS_LOST, sdl.WINDOWEVENT_MINIMIZED:
			return RawEvent{Kind: RawFocusLost}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return RawEvent{Kind: RawExposed}, true
		case sdl.WINDOWEVENT_RESIZED:
			return RawEvent{Kind: RawResized, Width: int(e.Data1), Height: int(e.Data2)}, true
		}
	}
	return RawEvent{}, false
}

func sdlMods(mod uint16) KeyMods {
	var mods KeyMods
	if mod&uint16(sdl.KMOD_SHIFT) != 0 {
		mods |= ModShift
	}
	if mod&uint16(sdl.KMOD_CTRL) != 0 {
		mods |= ModCtrl
	}
	if mod&uint16(sdl.KMOD_ALT) != 0 {
		mods |= ModAlt
	}
	return mods
}

func (sb *SDLBackend) RelativeMouseState() (int, int) {
	x, y, _ := sdl.GetRelativeMouseState()
	return int(x), int(y)
}

func (sb *SDLBackend) KeyboardState(sc Scancode) bool {
	state := sdl.GetKeyboardState()
	return int(sc) < len(state) && state[sc] != 0
}

func (sb *SDLBackend) SetPointerVisible(visible bool) {
	toggle := sdl.DISABLE
	if visible {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		logger().Warn("show cursor", "visible", visible, "err", err)
	}
}

func (sb *SDLBackend) SetRelativeMode(enabled bool) {
	if sdl.SetRelativeMouseMode(enabled) != 0 {
		logger().Warn("relative mouse mode unavailable", "enabled", enabled, "err", sdl.GetError())
	}
}

// Run drives the loop on the locked main thread. Without vsync each frame
// is padded to the refresh interval.
func (sb *SDLBackend) Run(loop FrameLoop) error {
	for {
		start := time.Now()
		if err := loop.Update(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		loop.Draw()
		if !sb.vsync {
			if rest := sdlFrameInterval - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}
	}
}

type sdlWindow struct {
	backend  *SDLBackend
	window   *sdl.Window
	renderer *sdl.Renderer
}

func (w *sdlWindow) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *sdlWindow) Flags() WindowFlags {
	flags := w.window.GetFlags()
	var f WindowFlags
	if flags&uint32(sdl.WINDOW_SHOWN) != 0 && flags&uint32(sdl.WINDOW_MINIMIZED) == 0 {
		f |= WindowShown
	}
	if flags&uint32(sdl.WINDOW_INPUT_FOCUS) != 0 {
		f |= WindowInputFocus
	}
	return f
}

func (w *sdlWindow) SetSize(width, height int) error {
	w.window.SetSize(int32(width), int32(height))
	return nil
}

func (w *sdlWindow) SetTitle(title string) { w.window.SetTitle(title) }

func (w *sdlWindow) SetLogicalSize(width, height int) {
	if err := w.renderer.SetLogicalSize(int32(width), int32(height)); err != nil {
		logger().Warn("set logical size", "width", width, "height", height, "err", err)
	}
}

func (w *sdlWindow) WarpPointer(x, y int) {
	w.window.WarpMouseInWindow(int32(x), int32(y))
}

// CreateTexture returns a streaming texture whose byte order matches the
// RGBA frame buffer on little-endian hosts.
func (w *sdlWindow) CreateTexture(width, height int) (VideoTexture, error) {
	tex, err := w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), sdl.TEXTUREACCESS_STREAMING, int32(width), int32(height))
	if err != nil {
		return nil, err
	}
	return &sdlTexture{texture: tex}, nil
}

func (w *sdlWindow) Clear() {
	w.renderer.SetDrawColor(0, 0, 0, 255)
	w.renderer.Clear()
}

func (w *sdlWindow) Present(tex VideoTexture, src Rect) error {
	t, ok := tex.(*sdlTexture)
	if !ok || t.texture == nil {
		return errors.New("present with invalid texture")
	}
	rect := sdl.Rect{X: int32(src.X), Y: int32(src.Y), W: int32(src.W), H: int32(src.H)}
	if err := w.renderer.Copy(t.texture, &rect, nil); err != nil {
		return err
	}
	w.renderer.Present()
	return nil
}

// Destroy releases the renderer, then the window.
func (w *sdlWindow) Destroy() {
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	if w.backend.window == w {
		w.backend.window = nil
	}
}

type sdlTexture struct {
	texture *sdl.Texture
}

func (t *sdlTexture) Update(pixels []byte, pitch int) error {
	if len(pixels) == 0 {
		return nil
	}
	return t.texture.Update(nil, unsafe.Pointer(&pixels[0]), pitch)
}

func (t *sdlTexture) Destroy() {
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
}
