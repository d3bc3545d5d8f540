// video_display.go - Window, back buffer and frame presentation pipeline

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
	"fmt"
	"image/color"
	"math"
	"time"
)

// DisplayManager owns the window, its streaming texture, the indexed back
// buffer and the true-color conversion buffer. They are always replaced
// as a unit: the old set is released before the new one is allocated.
type DisplayManager struct {
	sys *VideoSubsystem

	window   VideoWindow
	texture  VideoTexture
	geometry DisplayGeometry

	screen []byte // indexed back buffer, SCREEN_WIDTH x SCREEN_HEIGHT
	rgba   []byte // converted frame, 4 bytes per pixel

	palette PaletteState
	lut     [PALETTE_ENTRIES]color.RGBA // palette in effect for presentation

	frameCount uint64
	fps        int
	fpsFrames  int
	fpsStart   time.Time
	lastFrame  time.Time

	closed bool
}

func (d *DisplayManager) windowSpec(g DisplayGeometry) WindowSpec {
	s := d.sys
	return WindowSpec{
		Title:        VIDEO_WINDOW_TITLE,
		Width:        g.WindowWidth,
		Height:       g.WindowHeight,
		Fullscreen:   g.Fullscreen,
		Resizable:    !g.Fullscreen,
		X:            s.windowX,
		Y:            s.windowY,
		Centered:     s.windowCentered,
		VSync:        s.cfg.VSync,
		ScaleQuality: s.cfg.ScaleQuality,
	}
}

// Initialize creates the window, texture and buffers for g. Everything
// acquired is released again if a later step fails.
func (d *DisplayManager) Initialize(g DisplayGeometry) error {
	window, err := d.sys.backend.CreateWindow(d.windowSpec(g))
	if err != nil {
		return &VideoError{
			Operation: "window creation",
			Details:   fmt.Sprintf("%dx%d fullscreen=%v", g.WindowWidth, g.WindowHeight, g.Fullscreen),
			Err:       err,
		}
	}
	complete := false
	defer func() {
		if !complete {
			window.Destroy()
		}
	}()

	if g.Fullscreen {
		g = fitToWindow(window, g)
	}
	window.SetLogicalSize(g.LogicalWidth, g.LogicalHeight)
	texture, err := window.CreateTexture(SCREEN_WIDTH, SCREEN_HEIGHT)
	if err != nil {
		return &VideoError{
			Operation: "texture creation",
			Details:   fmt.Sprintf("%dx%d streaming", SCREEN_WIDTH, SCREEN_HEIGHT),
			Err:       err,
		}
	}

	d.window = window
	d.texture = texture
	d.geometry = g
	d.allocateBuffers()
	d.palette.MarkDirty()
	d.closed = false
	complete = true
	return nil
}

// fitToWindow re-derives fullscreen geometry from the window that was
// actually created, which is desktop sized whatever size was requested.
func fitToWindow(window VideoWindow, g DisplayGeometry) DisplayGeometry {
	winW, winH := window.Size()
	if winW <= 0 || winH <= 0 || (winW == g.WindowWidth && winH == g.WindowHeight) {
		return g
	}
	width, height := fitFullscreen(winW, winH)
	return newGeometry(width, height, winW, winH, true, g.Widescreen)
}

func (d *DisplayManager) allocateBuffers() {
	d.screen = make([]byte, SCREEN_WIDTH*SCREEN_HEIGHT)
	d.rgba = make([]byte, SCREEN_WIDTH*SCREEN_HEIGHT*4)
}

// release frees the texture, then the window.
func (d *DisplayManager) release() {
	if d.texture != nil {
		d.texture.Destroy()
		d.texture = nil
	}
	if d.window != nil {
		d.window.Destroy()
		d.window = nil
	}
	d.screen = nil
	d.rgba = nil
}

// recreate tears down the current window set and builds one for g.
func (d *DisplayManager) recreate(g DisplayGeometry) error {
	d.release()
	return d.Initialize(g)
}

// resize keeps the window but resizes it and replaces the texture and
// buffers for g.
func (d *DisplayManager) resize(g DisplayGeometry) error {
	if d.window == nil {
		return d.Initialize(g)
	}
	if err := d.window.SetSize(g.WindowWidth, g.WindowHeight); err != nil {
		return &VideoError{Operation: "window resize", Details: fmt.Sprintf("%dx%d", g.WindowWidth, g.WindowHeight), Err: err}
	}
	if d.texture != nil {
		d.texture.Destroy()
		d.texture = nil
	}
	texture, err := d.window.CreateTexture(SCREEN_WIDTH, SCREEN_HEIGHT)
	if err != nil {
		return &VideoError{Operation: "texture creation", Details: "after resize", Err: err}
	}
	d.texture = texture
	d.window.SetLogicalSize(g.LogicalWidth, g.LogicalHeight)
	d.geometry = g
	d.allocateBuffers()
	return nil
}

// applyGeometry switches the renderable band and logical size without
// touching the window or texture.
func (d *DisplayManager) applyGeometry(g DisplayGeometry) {
	d.geometry = g
	if d.window != nil {
		d.window.SetLogicalSize(g.LogicalWidth, g.LogicalHeight)
	}
}

func (d *DisplayManager) clearBackBuffer() {
	clear(d.screen)
}

func (d *DisplayManager) Geometry() DisplayGeometry {
	return d.geometry
}

// Screen is the indexed back buffer the game renders into. It is replaced
// on every mode transition, so callers must not retain it across ticks.
func (d *DisplayManager) Screen() []byte {
	return d.screen
}

func (d *DisplayManager) Pitch() int {
	return SCREEN_WIDTH
}

func (d *DisplayManager) SetPalette(entries [PALETTE_ENTRIES]color.RGBA) {
	d.palette.Entries = entries
	d.palette.MarkDirty()
}

// Present converts the back buffer through the palette, uploads it and
// shows the renderable band.
func (d *DisplayManager) Present() error {
	if d.window == nil || d.texture == nil {
		return nil
	}
	if d.palette.Dirty() {
		d.lut = d.palette.take()
	}
	lut := &d.lut
	rgba := d.rgba
	for i, idx := range d.screen {
		c := lut[idx]
		o := i * 4
		rgba[o] = c.R
		rgba[o+1] = c.G
		rgba[o+2] = c.B
		rgba[o+3] = c.A
	}
	if err := d.texture.Update(rgba, SCREEN_WIDTH*4); err != nil {
		return &VideoError{Operation: "texture update", Details: "frame upload", Err: err}
	}
	d.window.Clear()
	if err := d.window.Present(d.texture, d.geometry.Source); err != nil {
		return &VideoError{Operation: "present", Details: "frame present", Err: err}
	}
	d.countFrame(d.sys.now())
	return nil
}

// countFrame advances the frame counter and, with FPS display enabled,
// closes a measurement window once at least a second has elapsed.
func (d *DisplayManager) countFrame(now time.Time) {
	d.frameCount++
	d.lastFrame = now
	if !d.sys.cfg.ShowFPS {
		return
	}
	if d.fpsStart.IsZero() {
		d.fpsStart = now
		d.fpsFrames = 0
		return
	}
	d.fpsFrames++
	elapsed := now.Sub(d.fpsStart)
	if elapsed < time.Second {
		return
	}
	d.fps = int(math.Round(float64(d.fpsFrames) / elapsed.Seconds()))
	d.fpsStart = now
	d.fpsFrames = 0
	if overlay, ok := d.window.(OverlayCapable); ok {
		overlay.SetOverlayText(fmt.Sprintf("%d FPS", d.fps))
	}
}

// SetShowFPS toggles the FPS counter and restarts its measurement window.
func (d *DisplayManager) SetShowFPS(show bool) {
	d.sys.cfg.ShowFPS = show
	d.fpsStart = time.Time{}
	d.fpsFrames = 0
	d.fps = 0
	if overlay, ok := d.window.(OverlayCapable); ok && !show {
		overlay.SetOverlayText("")
	}
}

func (d *DisplayManager) FPS() int {
	return d.fps
}

func (d *DisplayManager) FrameCount() uint64 {
	return d.frameCount
}

// ReadScreen copies the back buffer into dst and returns the bytes copied.
func (d *DisplayManager) ReadScreen(dst []byte) int {
	return copy(dst, d.screen)
}

// Snapshot returns a copy of the last converted frame.
func (d *DisplayManager) Snapshot() FrameSnapshot {
	snapshot := FrameSnapshot{
		Buffer:    make([]byte, len(d.rgba)),
		Width:     SCREEN_WIDTH,
		Height:    SCREEN_HEIGHT,
		Timestamp: d.lastFrame,
	}
	copy(snapshot.Buffer, d.rgba)
	return snapshot
}

// Shutdown releases the window set and leaves the pointer visible.
func (d *DisplayManager) Shutdown() {
	if d.closed {
		return
	}
	d.closed = true
	backend := d.sys.backend
	backend.SetRelativeMode(false)
	backend.SetPointerVisible(true)
	d.release()
}
