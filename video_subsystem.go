// video_subsystem.go - Display and input subsystem lifecycle and per-tick entry points

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
	"time"
)

const (
	VIDEO_WINDOW_TITLE = "RetroVideo"
	PASTE_LIMIT        = 4096
)

// resizeRequest is the single pending window-resize slot. Successive
// resize events overwrite it; FinishUpdate consumes it once.
type resizeRequest struct {
	width  int
	height int
}

// VideoSubsystem owns the window, the presentation pipeline and the input
// translation state. All methods run on the game loop goroutine.
type VideoSubsystem struct {
	backend  VideoBackend
	cfg      *VideoConfig
	store    ConfigStore
	state    EngineState
	hooks    GameHooks
	events   EventSink
	cache    ResourceCache
	platform PlatformServices
	cue      CuePlayer
	fatal    FatalFunc
	now      func() time.Time

	keys       *KeyTable
	gamma      *GammaTable
	gammaIndex int
	rawPalette []byte

	display *DisplayManager
	modes   *ModeController
	input   *InputTranslator
	mouse   *MouseController

	desktopWidth   int
	desktopHeight  int
	windowX        int
	windowY        int
	windowCentered bool

	screenVisible bool
	windowFocused bool

	pendingResize     *resizeRequest
	pendingWidescreen bool
	quitRequested     bool

	initialized bool
	closed      bool
}

// SubsystemOption customizes a VideoSubsystem before Initialize.
type SubsystemOption func(*VideoSubsystem)

func WithConfigStore(store ConfigStore) SubsystemOption {
	return func(s *VideoSubsystem) { s.store = store }
}

func WithResourceCache(cache ResourceCache) SubsystemOption {
	return func(s *VideoSubsystem) { s.cache = cache }
}

func WithPlatform(p PlatformServices) SubsystemOption {
	return func(s *VideoSubsystem) { s.platform = p }
}

func WithCuePlayer(c CuePlayer) SubsystemOption {
	return func(s *VideoSubsystem) { s.cue = c }
}

// WithFatal replaces the fatal channel. Tests use it to observe
// acquisition failures without exiting.
func WithFatal(f FatalFunc) SubsystemOption {
	return func(s *VideoSubsystem) { s.fatal = f }
}

func WithClock(now func() time.Time) SubsystemOption {
	return func(s *VideoSubsystem) { s.now = now }
}

func NewVideoSubsystem(backend VideoBackend, cfg *VideoConfig, state EngineState, hooks GameHooks, events EventSink, opts ...SubsystemOption) *VideoSubsystem {
	if cfg == nil {
		cfg = DefaultVideoConfig()
	}
	s := &VideoSubsystem{
		backend:  backend,
		cfg:      cfg,
		store:    discardConfigStore{},
		state:    state,
		hooks:    hooks,
		events:   events,
		platform: NoopPlatform{},
		cue:      silentCue{},
		fatal:    fatalExit,
		now:      time.Now,
		keys:     NewKeyTable(),
		gamma:    BuildGammaTable(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gammaIndex = GammaIndexFor(cfg.Gamma)
	s.display = &DisplayManager{sys: s}
	s.modes = &ModeController{sys: s}
	s.input = &InputTranslator{sys: s}
	s.mouse = &MouseController{
		sys:       s,
		threshold: cfg.MouseThreshold,
		factor:    cfg.MouseAcceleration,
	}
	return s
}

// fail reports an unrecoverable acquisition failure through the fatal
// channel, which owns logging it, and hands the error back for callers
// that keep running.
func (s *VideoSubsystem) fail(err error) error {
	s.fatal(err)
	return err
}

// Initialize brings up the backend, computes the startup geometry from the
// persisted configuration, creates the window and loads the palette.
func (s *VideoSubsystem) Initialize() error {
	if s.initialized {
		return nil
	}
	if err := s.backend.Init(s.cfg.VideoDriver); err != nil {
		return s.fail(&VideoError{
			Operation: "subsystem init",
			Details:   fmt.Sprintf("backend %s driver %q", s.backend.Name(), s.cfg.VideoDriver),
			Err:       err,
		})
	}
	w, h, err := s.backend.DesktopBounds()
	if err != nil {
		s.backend.Shutdown()
		return s.fail(&VideoError{Operation: "desktop query", Details: "cannot read desktop bounds", Err: err})
	}
	s.desktopWidth, s.desktopHeight = w, h
	s.windowX, s.windowY, s.windowCentered = parseWindowPosition(s.cfg.WindowPosition, w, h)

	g := s.modes.initialGeometry()
	if err := s.display.Initialize(g); err != nil {
		s.backend.Shutdown()
		return s.fail(err)
	}
	s.initialized = true
	g = s.display.Geometry()

	logger().Info("video initialized",
		"backend", s.backend.Name(),
		"desktop", fmt.Sprintf("%dx%d", w, h),
		"fullscreen", g.Fullscreen,
		"size", fmt.Sprintf("%dx%d", g.Width, g.Height),
		"window", fmt.Sprintf("%dx%d", g.WindowWidth, g.WindowHeight),
		"gamma", GammaLevel(s.gammaIndex))

	if s.cfg.Widescreen && g.Fullscreen {
		if s.state.GameState() == GameStateLevel {
			s.modes.ToggleWidescreen(true)
		} else {
			s.pendingWidescreen = true
		}
	}

	if s.cache != nil {
		if err := s.LoadPalette(); err != nil {
			logger().Warn("palette unavailable", "err", err)
		}
	}

	s.updateFocus()
	s.mouse.UpdateGrab()
	s.platform.SyncKeyboardLEDs(s.cfg.AlwaysRun)
	s.modes.saveDefaults()
	return nil
}

// StartTick drains input and reads the mouse. A quit request seen during
// the drain is honored after it completes.
func (s *VideoSubsystem) StartTick() {
	if !s.initialized || s.closed {
		return
	}
	s.input.PollEvents()
	if s.windowFocused && (s.state.MouseLookEnabled() || s.state.MenuActive()) {
		s.mouse.PerTick()
	}
	if s.quitRequested {
		s.quitRequested = false
		s.cue.PlayQuitCue()
		s.hooks.RequestQuit()
	}
}

// FinishUpdate applies deferred geometry changes, updates the grab and
// presents the frame unless the window is hidden.
func (s *VideoSubsystem) FinishUpdate() error {
	if !s.initialized || s.closed {
		return nil
	}
	if req := s.takePendingResize(); req != nil {
		s.modes.Resize(req.height)
		s.display.palette.MarkDirty()
	}
	if s.pendingWidescreen && s.state.GameState() == GameStateLevel {
		s.modes.ApplyPendingWidescreen()
	}
	s.mouse.UpdateGrab()
	if !s.screenVisible {
		return nil
	}
	return s.display.Present()
}

func (s *VideoSubsystem) takePendingResize() *resizeRequest {
	req := s.pendingResize
	s.pendingResize = nil
	return req
}

// updateFocus recomputes visibility and focus from the window flags. Losing
// focus in a running level asks the game to pause, once per transition.
func (s *VideoSubsystem) updateFocus() {
	if s.display.window == nil {
		return
	}
	flags := s.display.window.Flags()
	wasFocused := s.windowFocused
	s.screenVisible = flags&WindowShown != 0
	s.windowFocused = s.screenVisible && flags&WindowInputFocus != 0
	if wasFocused && !s.windowFocused &&
		s.state.GameState() == GameStateLevel && !s.state.Paused() && !s.state.ConsoleActive() {
		s.hooks.RequestPause()
	}
}

// SetPalette routes a raw 768-byte palette through the current gamma level.
// The result is applied at the next Present.
func (s *VideoSubsystem) SetPalette(raw []byte) error {
	entries, err := ApplyPalette(s.gamma, s.gammaIndex, raw)
	if err != nil {
		return err
	}
	s.rawPalette = append(s.rawPalette[:0], raw[:PALETTE_BYTES]...)
	s.display.SetPalette(entries)
	return nil
}

// LoadPalette fetches PLAYPAL from the resource cache and applies it.
func (s *VideoSubsystem) LoadPalette() error {
	if s.cache == nil {
		return fmt.Errorf("no resource cache")
	}
	raw, err := s.cache.Lump(PALETTE_LUMP)
	if err != nil {
		return fmt.Errorf("load %s: %w", PALETTE_LUMP, err)
	}
	return s.SetPalette(raw)
}

// SetGammaIndex selects a gamma level and re-applies the last palette.
func (s *VideoSubsystem) SetGammaIndex(index int) {
	s.gammaIndex = clampGammaIndex(index)
	s.cfg.Gamma = GammaLevel(s.gammaIndex)
	if len(s.rawPalette) == PALETTE_BYTES {
		if err := s.SetPalette(s.rawPalette); err != nil {
			logger().Warn("reapply palette", "err", err)
		}
	}
	s.modes.saveDefaults()
}

func (s *VideoSubsystem) GammaIndex() int {
	return s.gammaIndex
}

// KeyDown reports whether a remappable key is currently held.
func (s *VideoSubsystem) KeyDown(key Key) bool {
	sc, ok := s.keys.ScancodeFor(key)
	if !ok {
		return false
	}
	return s.backend.KeyboardState(sc)
}

func (s *VideoSubsystem) Geometry() DisplayGeometry {
	return s.display.Geometry()
}

func (s *VideoSubsystem) Display() *DisplayManager { return s.display }

func (s *VideoSubsystem) Modes() *ModeController { return s.modes }

func (s *VideoSubsystem) Mouse() *MouseController { return s.mouse }

func (s *VideoSubsystem) Config() *VideoConfig { return s.cfg }

// Shutdown releases the window and the backend. Safe to call more than once.
func (s *VideoSubsystem) Shutdown() {
	if s.closed {
		return
	}
	s.closed = true
	s.display.Shutdown()
	s.platform.RestoreKeyboardLEDs()
	if s.initialized {
		s.backend.Shutdown()
	}
	logger().Debug("video shut down", "frames", s.display.FrameCount())
}
