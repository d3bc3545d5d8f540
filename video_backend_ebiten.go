//go:build !headless

// video_backend_ebiten.go - Ebiten video backend

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
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

func init() {
	compiledFeatures = append(compiledFeatures, "video:ebiten")
}

// EbitenBackend drives the game loop from ebiten's Update and Draw.
// Ebiten owns a single window, so CreateWindow reconfigures it.
type EbitenBackend struct {
	window *ebitenWindow
	events []RawEvent
	loop   FrameLoop

	relative       bool
	pointerVisible bool
	cursorValid    bool
	lastCursorX    int
	lastCursorY    int
	relX, relY     int

	focused   bool
	minimized bool
	lastW     int
	lastH     int

	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenBackend() (VideoBackend, error) {
	return &EbitenBackend{pointerVisible: true, focused: true}, nil
}

func (eb *EbitenBackend) Name() string { return VIDEO_BACKEND_EBITEN }

func (eb *EbitenBackend) Init(driver string) error {
	if driver != "" {
		logger().Debug("ebiten ignores video driver", "driver", driver)
	}
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetWindowClosingHandled(true)
	return nil
}

func (eb *EbitenBackend) Shutdown() {
	eb.window = nil
}

func (eb *EbitenBackend) DesktopBounds() (int, int, error) {
	w, h := ebiten.Monitor().Size()
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New("monitor reports no size")
	}
	return w, h, nil
}

// DisplayModes reports the desktop size only; ebiten does not enumerate modes.
func (eb *EbitenBackend) DisplayModes() ([]DisplayMode, error) {
	w, h, err := eb.DesktopBounds()
	if err != nil {
		return nil, err
	}
	return []DisplayMode{{Width: w, Height: h}}, nil
}

func (eb *EbitenBackend) CreateWindow(spec WindowSpec) (VideoWindow, error) {
	if eb.window != nil {
		return nil, errors.New("ebiten window already exists")
	}
	ebiten.SetWindowTitle(spec.Title)
	ebiten.SetVsyncEnabled(spec.VSync)
	if spec.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
	if !spec.Fullscreen {
		ebiten.SetWindowSize(spec.Width, spec.Height)
		if !spec.Centered {
			ebiten.SetWindowPosition(spec.X, spec.Y)
		}
	}
	ebiten.SetFullscreen(spec.Fullscreen)

	filter := ebiten.FilterLinear
	if spec.ScaleQuality == "nearest" {
		filter = ebiten.FilterNearest
	}
	eb.window = &ebitenWindow{backend: eb, fullscreen: spec.Fullscreen, filter: filter}
	eb.lastW, eb.lastH = spec.Width, spec.Height
	eb.cursorValid = false
	return eb.window, nil
}

func (eb *EbitenBackend) PollEvent() (RawEvent, bool) {
	if len(eb.events) == 0 {
		return RawEvent{}, false
	}
	ev := eb.events[0]
	eb.events = eb.events[1:]
	return ev, true
}

func (eb *EbitenBackend) RelativeMouseState() (int, int) {
	dx, dy := eb.relX, eb.relY
	eb.relX, eb.relY = 0, 0
	return dx, dy
}

func (eb *EbitenBackend) KeyboardState(sc Scancode) bool {
	key, ok := ebitenKeyFor(sc)
	return ok && ebiten.IsKeyPressed(key)
}

func (eb *EbitenBackend) SetPointerVisible(visible bool) {
	eb.pointerVisible = visible
	eb.applyCursorMode()
}

func (eb *EbitenBackend) SetRelativeMode(enabled bool) {
	eb.relative = enabled
	eb.cursorValid = false
	eb.applyCursorMode()
}

func (eb *EbitenBackend) applyCursorMode() {
	switch {
	case eb.relative:
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	case eb.pointerVisible:
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	default:
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

func (eb *EbitenBackend) Run(loop FrameLoop) error {
	eb.loop = loop
	return ebiten.RunGame(&ebitenGame{backend: eb})
}

// collectInput turns this tick's ebiten input state into raw events.
func (eb *EbitenBackend) collectInput() {
	if ebiten.IsWindowBeingClosed() {
		eb.events = append(eb.events, RawEvent{Kind: RawQuit})
	}

	focused := ebiten.IsFocused()
	if focused != eb.focused {
		eb.focused = focused
		kind := RawFocusLost
		if focused {
			kind = RawFocusGained
		}
		eb.events = append(eb.events, RawEvent{Kind: kind})
	}
	minimized := ebiten.IsWindowMinimized()
	if minimized != eb.minimized {
		eb.minimized = minimized
		if minimized {
			eb.events = append(eb.events, RawEvent{Kind: RawFocusLost})
		} else {
			eb.events = append(eb.events, RawEvent{Kind: RawExposed}, RawEvent{Kind: RawFocusGained})
		}
	}

	if eb.window != nil && !eb.window.fullscreen {
		if w, h := ebiten.WindowSize(); w != eb.lastW || h != eb.lastH {
			eb.lastW, eb.lastH = w, h
			eb.events = append(eb.events, RawEvent{Kind: RawResized, Width: w, Height: h})
		}
	}

	mods := currentMods()
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if sc, ok := scancodeForEbitenKey(key); ok {
			eb.events = append(eb.events, RawEvent{Kind: RawKeyDown, Scancode: sc, Sym: usSymFor(ebitenKeys, sc), Mods: mods})
		}
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		if sc, ok := scancodeForEbitenKey(key); ok {
			eb.events = append(eb.events, RawEvent{Kind: RawKeyUp, Scancode: sc, Sym: usSymFor(ebitenKeys, sc), Mods: mods})
		}
	}

	// Clipboard paste: Ctrl+Shift+V
	if mods&(ModCtrl|ModShift) == ModCtrl|ModShift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if data := eb.readClipboard(); len(data) > 0 {
			eb.events = append(eb.events, RawEvent{Kind: RawPaste, Text: string(data)})
		}
	}

	for button, mb := range ebitenMouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb) {
			eb.events = append(eb.events, RawEvent{Kind: RawMouseButtonDown, Button: button + 1})
		}
		if inpututil.IsMouseButtonJustReleased(mb) {
			eb.events = append(eb.events, RawEvent{Kind: RawMouseButtonUp, Button: button + 1})
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		step := 1
		if wy < 0 {
			step = -1
		}
		eb.events = append(eb.events, RawEvent{Kind: RawMouseWheel, WheelY: step})
	}

	x, y := ebiten.CursorPosition()
	if eb.cursorValid {
		eb.relX += x - eb.lastCursorX
		eb.relY += y - eb.lastCursorY
	}
	eb.lastCursorX, eb.lastCursorY = x, y
	eb.cursorValid = true
}

func (eb *EbitenBackend) readClipboard() []byte {
	eb.clipboardOnce.Do(func() {
		eb.clipboardOK = clipboard.Init() == nil
	})
	if !eb.clipboardOK {
		return nil
	}
	return clipboard.Read(clipboard.FmtText)
}

func currentMods() KeyMods {
	var mods KeyMods
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	return mods
}

// ebitenMouseButtons is indexed by backend button number minus one.
var ebitenMouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
	ebiten.MouseButton3,
	ebiten.MouseButton4,
}

type ebitenGame struct {
	backend *EbitenBackend
}

func (g *ebitenGame) Update() error {
	eb := g.backend
	eb.collectInput()
	if err := eb.loop.Update(); err != nil {
		if errors.Is(err, ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	eb := g.backend
	eb.loop.Draw()
	if eb.window != nil {
		eb.window.draw(screen)
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if w := g.backend.window; w != nil && w.logicalWidth > 0 && w.logicalHeight > 0 {
		return w.logicalWidth, w.logicalHeight
	}
	return outsideWidth, outsideHeight
}

type ebitenWindow struct {
	backend    *EbitenBackend
	fullscreen bool
	filter     ebiten.Filter

	logicalWidth  int
	logicalHeight int

	frame   *ebiten.Image
	source  Rect
	overlay string
}

func (w *ebitenWindow) Size() (int, int) {
	if w.fullscreen {
		return ebiten.Monitor().Size()
	}
	return ebiten.WindowSize()
}

func (w *ebitenWindow) Flags() WindowFlags {
	var f WindowFlags
	if !ebiten.IsWindowMinimized() {
		f |= WindowShown
	}
	if ebiten.IsFocused() {
		f |= WindowInputFocus
	}
	return f
}

func (w *ebitenWindow) SetSize(width, height int) error {
	ebiten.SetWindowSize(width, height)
	w.backend.lastW, w.backend.lastH = width, height
	return nil
}

func (w *ebitenWindow) SetTitle(title string) { ebiten.SetWindowTitle(title) }

func (w *ebitenWindow) SetLogicalSize(width, height int) {
	w.logicalWidth, w.logicalHeight = width, height
}

// WarpPointer cannot move the OS cursor under ebiten; it restarts the
// relative baseline so the next read reports no jump.
func (w *ebitenWindow) WarpPointer(x, y int) {
	w.backend.cursorValid = false
}

func (w *ebitenWindow) CreateTexture(width, height int) (VideoTexture, error) {
	return &ebitenTexture{width: width, height: height}, nil
}

func (w *ebitenWindow) Clear() {}

func (w *ebitenWindow) Present(tex VideoTexture, src Rect) error {
	t, ok := tex.(*ebitenTexture)
	if !ok || t.img == nil {
		return errors.New("present with invalid texture")
	}
	w.frame = t.img
	w.source = src
	return nil
}

func (w *ebitenWindow) SetOverlayText(s string) { w.overlay = s }

func (w *ebitenWindow) Destroy() {
	w.frame = nil
	if w.backend.window == w {
		w.backend.window = nil
	}
}

// draw stretches the presented band over the whole screen.
func (w *ebitenWindow) draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if w.frame == nil || w.source.W <= 0 || w.source.H <= 0 {
		return
	}
	band := w.frame.SubImage(image.Rect(w.source.X, w.source.Y, w.source.X+w.source.W, w.source.Y+w.source.H)).(*ebiten.Image)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{Filter: w.filter}
	op.GeoM.Scale(float64(sw)/float64(w.source.W), float64(sh)/float64(w.source.H))
	screen.DrawImage(band, op)
	if w.overlay != "" {
		drawOverlay(screen, w.overlay)
	}
}

func drawOverlay(screen *ebiten.Image, s string) {
	face := basicfont.Face7x13
	bounds := text.BoundString(face, s)
	x := screen.Bounds().Dx() - bounds.Dx() - 8
	ebitenutil.DrawRect(screen, float64(x-4), 2, float64(bounds.Dx()+8), 17, color.RGBA{0, 0, 0, 180})
	text.Draw(screen, s, face, x, 15, color.RGBA{0, 220, 90, 255})
}

type ebitenTexture struct {
	width  int
	height int
	img    *ebiten.Image
}

func (t *ebitenTexture) Update(pixels []byte, pitch int) error {
	if pitch != t.width*4 {
		return errors.New("ebiten texture requires packed rows")
	}
	if t.img == nil {
		t.img = ebiten.NewImage(t.width, t.height)
	}
	t.img.WritePixels(pixels[:t.width*t.height*4])
	return nil
}

func (t *ebitenTexture) Destroy() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

var ebitenKeys = NewKeyTable()

var ebitenScancodes = map[ebiten.Key]Scancode{
	ebiten.KeyA: ScancodeA, ebiten.KeyB: ScancodeB, ebiten.KeyC: ScancodeC, ebiten.KeyD: ScancodeD,
	ebiten.KeyE: ScancodeE, ebiten.KeyF: ScancodeF, ebiten.KeyG: ScancodeG, ebiten.KeyH: ScancodeH,
	ebiten.KeyI: ScancodeI, ebiten.KeyJ: ScancodeJ, ebiten.KeyK: ScancodeK, ebiten.KeyL: ScancodeL,
	ebiten.KeyM: ScancodeM, ebiten.KeyN: ScancodeN, ebiten.KeyO: ScancodeO, ebiten.KeyP: ScancodeP,
	ebiten.KeyQ: ScancodeQ, ebiten.KeyR: ScancodeR, ebiten.KeyS: ScancodeS, ebiten.KeyT: ScancodeT,
	ebiten.KeyU: ScancodeU, ebiten.KeyV: ScancodeV, ebiten.KeyW: ScancodeW, ebiten.KeyX: ScancodeX,
	ebiten.KeyY: ScancodeY, ebiten.KeyZ: ScancodeZ,

	ebiten.KeyDigit1: Scancode1, ebiten.KeyDigit2: Scancode2, ebiten.KeyDigit3: Scancode3,
	ebiten.KeyDigit4: Scancode4, ebiten.KeyDigit5: Scancode5, ebiten.KeyDigit6: Scancode6,
	ebiten.KeyDigit7: Scancode7, ebiten.KeyDigit8: Scancode8, ebiten.KeyDigit9: Scancode9,
	ebiten.KeyDigit0: Scancode0,

	ebiten.KeyEnter:        ScancodeReturn,
	ebiten.KeyEscape:       ScancodeEscape,
	ebiten.KeyBackspace:    ScancodeBackspace,
	ebiten.KeyTab:          ScancodeTab,
	ebiten.KeySpace:        ScancodeSpace,
	ebiten.KeyMinus:        ScancodeMinus,
	ebiten.KeyEqual:        ScancodeEquals,
	ebiten.KeyBracketLeft:  ScancodeLeftBracket,
	ebiten.KeyBracketRight: ScancodeRightBracket,
	ebiten.KeyBackslash:    ScancodeBackslash,
	ebiten.KeySemicolon:    ScancodeSemicolon,
	ebiten.KeyQuote:        ScancodeApostrophe,
	ebiten.KeyBackquote:    ScancodeGrave,
	ebiten.KeyComma:        ScancodeComma,
	ebiten.KeyPeriod:       ScancodePeriod,
	ebiten.KeySlash:        ScancodeSlash,
	ebiten.KeyCapsLock:     ScancodeCapsLock,

	ebiten.KeyF1: ScancodeF1, ebiten.KeyF2: ScancodeF2, ebiten.KeyF3: ScancodeF3, ebiten.KeyF4: ScancodeF4,
	ebiten.KeyF5: ScancodeF5, ebiten.KeyF6: ScancodeF6, ebiten.KeyF7: ScancodeF7, ebiten.KeyF8: ScancodeF8,
	ebiten.KeyF9: ScancodeF9, ebiten.KeyF10: ScancodeF10, ebiten.KeyF11: ScancodeF11, ebiten.KeyF12: ScancodeF12,

	ebiten.KeyPrintScreen: ScancodePrintScreen,
	ebiten.KeyScrollLock:  ScancodeScrollLock,
	ebiten.KeyPause:       ScancodePause,
	ebiten.KeyInsert:      ScancodeInsert,
	ebiten.KeyHome:        ScancodeHome,
	ebiten.KeyPageUp:      ScancodePageUp,
	ebiten.KeyDelete:      ScancodeDelete,
	ebiten.KeyEnd:         ScancodeEnd,
	ebiten.KeyPageDown:    ScancodePageDown,
	ebiten.KeyArrowRight:  ScancodeRight,
	ebiten.KeyArrowLeft:   ScancodeLeft,
	ebiten.KeyArrowDown:   ScancodeDown,
	ebiten.KeyArrowUp:     ScancodeUp,

	ebiten.KeyNumLock:        ScancodeNumLock,
	ebiten.KeyNumpadDivide:   ScancodeKPDivide,
	ebiten.KeyNumpadMultiply: ScancodeKPMultiply,
	ebiten.KeyNumpadSubtract: ScancodeKPMinus,
	ebiten.KeyNumpadAdd:      ScancodeKPPlus,
	ebiten.KeyNumpadEnter:    ScancodeKPEnter,
	ebiten.KeyNumpad1:        ScancodeKP1,
	ebiten.KeyNumpad2:        ScancodeKP2,
	ebiten.KeyNumpad3:        ScancodeKP3,
	ebiten.KeyNumpad4:        ScancodeKP4,
	ebiten.KeyNumpad5:        ScancodeKP5,
	ebiten.KeyNumpad6:        ScancodeKP6,
	ebiten.KeyNumpad7:        ScancodeKP7,
	ebiten.KeyNumpad8:        ScancodeKP8,
	ebiten.KeyNumpad9:        ScancodeKP9,
	ebiten.KeyNumpad0:        ScancodeKP0,
	ebiten.KeyNumpadDecimal:  ScancodeKPPeriod,
	ebiten.KeyNumpadEqual:    ScancodeKPEquals,
	ebiten.KeyContextMenu:    ScancodeApplication,
	ebiten.KeyControlLeft:    ScancodeLCtrl,
	ebiten.KeyShiftLeft:      ScancodeLShift,
	ebiten.KeyAltLeft:        ScancodeLAlt,
	ebiten.KeyMetaLeft:       ScancodeLGUI,
	ebiten.KeyControlRight:   ScancodeRCtrl,
	ebiten.KeyShiftRight:     ScancodeRShift,
	ebiten.KeyAltRight:       ScancodeRAlt,
	ebiten.KeyMetaRight:      ScancodeRGUI,
}

var ebitenKeysByScancode = func() map[Scancode]ebiten.Key {
	m := make(map[Scancode]ebiten.Key, len(ebitenScancodes))
	for key, sc := range ebitenScancodes {
		m[sc] = key
	}
	return m
}()

func scancodeForEbitenKey(key ebiten.Key) (Scancode, bool) {
	sc, ok := ebitenScancodes[key]
	return sc, ok
}

func ebitenKeyFor(sc Scancode) (ebiten.Key, bool) {
	key, ok := ebitenKeysByScancode[sc]
	return key, ok
}
