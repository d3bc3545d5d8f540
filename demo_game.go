// demo_game.go - Minimal game layer that drives the display subsystem

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

const (
	demoStartupTicks = 10
	demoStatusColor  = 7*32 + 12
	demoCursorColor  = 31
)

// DemoGame is a stand-in game layer: it renders a test pattern, reacts to
// the display hotkeys and answers the engine state queries.
type DemoGame struct {
	sys    *VideoSubsystem
	queue  *EventQueue
	script *ScriptHost

	state      GameState
	menu       bool
	paused     bool
	console    bool
	quitting   bool
	reveal     bool
	widescreen bool

	tick        int
	keyRepeat   int
	cheatDigits []int
	cursorX     int
	cursorY     int
	pauses      int
}

func NewDemoGame(queue *EventQueue) *DemoGame {
	return &DemoGame{
		queue:   queue,
		state:   GameStateDemoScreen,
		cursorX: SCREEN_WIDTH / 2,
		cursorY: SCREEN_HEIGHT / 2,
	}
}

func (g *DemoGame) Attach(sys *VideoSubsystem) { g.sys = sys }

func (g *DemoGame) SetScript(h *ScriptHost) { g.script = h }

// EngineState

func (g *DemoGame) MenuActive() bool       { return g.menu }
func (g *DemoGame) Paused() bool           { return g.paused }
func (g *DemoGame) ConsoleActive() bool    { return g.console }
func (g *DemoGame) GameState() GameState   { return g.state }
func (g *DemoGame) Quitting() bool         { return g.quitting }
func (g *DemoGame) SplashScreen() bool     { return g.tick < demoStartupTicks }
func (g *DemoGame) InputSuppressed() bool  { return g.tick < demoStartupTicks }
func (g *DemoGame) RevealActive() bool     { return g.reveal }
func (g *DemoGame) MouseLookEnabled() bool { return true }

// GameHooks

func (g *DemoGame) RequestPause() {
	g.paused = true
	g.pauses++
	logger().Info("paused on focus loss")
}

func (g *DemoGame) RequestQuit() { g.quitting = true }

// ResumeForQuit unpauses; the demo has no quit prompt to decline.
func (g *DemoGame) ResumeForQuit() { g.paused = false }

func (g *DemoGame) ClearCheatEntry()               { g.cheatDigits = g.cheatDigits[:0] }
func (g *DemoGame) EndReveal()                     { g.reveal = false }
func (g *DemoGame) ClearKeyRepeat()                { g.keyRepeat = 0 }
func (g *DemoGame) WidescreenChanged(enabled bool) { g.widescreen = enabled }

// Update runs one tick: input, events, script.
func (g *DemoGame) Update() error {
	g.sys.StartTick()
	for _, ev := range g.queue.Drain() {
		g.handleEvent(ev)
	}
	if g.script != nil {
		quit, err := g.script.Tick()
		if err != nil {
			logger().Warn("script disabled", "err", err)
			g.script = nil
		}
		if quit {
			g.quitting = true
		}
	}
	g.tick++
	if g.quitting {
		return ErrQuit
	}
	return nil
}

// Draw renders the test pattern and presents it.
func (g *DemoGame) Draw() {
	g.render()
	if err := g.sys.FinishUpdate(); err != nil {
		logger().Warn("present failed", "err", err)
	}
}

func (g *DemoGame) handleEvent(ev Event) {
	switch ev.Type {
	case EventKeyDown:
		g.keyRepeat++
		g.handleKey(Key(ev.Data1), ev.Data2)
	case EventMouseMotion:
		g.cursorX = max(0, min(SCREEN_WIDTH-1, g.cursorX+ev.Data2))
		g.cursorY = max(0, min(SCREEN_HEIGHT-1, g.cursorY-ev.Data3))
	case EventMouseButton:
		if ev.Data1&1 != 0 && g.state != GameStateLevel {
			g.state = GameStateLevel
		}
	}
}

func (g *DemoGame) handleKey(key Key, ch int) {
	sys := g.sys
	switch key {
	case KeyF11:
		sys.Modes().ToggleFullscreen()
	case KeyF10:
		sys.Modes().ToggleWidescreen(!sys.Geometry().Widescreen)
	case KeyF12:
		sys.Display().SetShowFPS(!sys.Config().ShowFPS)
	case KeyEquals, KeyPadPlus:
		sys.SetGammaIndex(sys.GammaIndex() + 1)
	case KeyMinus, KeyPadMinus:
		sys.SetGammaIndex(sys.GammaIndex() - 1)
	case KeyEscape:
		g.menu = !g.menu
	case KeyPause:
		g.paused = !g.paused
	case KeyEnter:
		g.state = GameStateLevel
		g.paused = false
	case '`':
		g.console = !g.console
	case 'q':
		if g.menu {
			g.quitting = true
		}
	}
	if ch >= '0' && ch <= '9' {
		g.cheatDigits = append(g.cheatDigits, ch-'0')
	}
}

// render fills the back buffer: palette bars, a scrolling stripe, the
// status bar band and a crosshair at the pointer.
func (g *DemoGame) render() {
	screen := g.sys.Display().Screen()
	if len(screen) < SCREEN_WIDTH*SCREEN_HEIGHT {
		return
	}
	pitch := g.sys.Display().Pitch()
	viewHeight := SCREEN_HEIGHT - SBAR_HEIGHT
	stripe := g.tick % SCREEN_WIDTH
	for y := 0; y < viewHeight; y++ {
		row := screen[y*pitch : y*pitch+SCREEN_WIDTH]
		shade := y * 32 / viewHeight
		for x := range row {
			ramp := x * 8 / SCREEN_WIDTH
			row[x] = byte(ramp*32 + shade)
		}
		row[stripe] = demoCursorColor
	}
	for y := viewHeight; y < SCREEN_HEIGHT; y++ {
		row := screen[y*pitch : y*pitch+SCREEN_WIDTH]
		for x := range row {
			row[x] = demoStatusColor
		}
	}
	for d := -6; d <= 6; d++ {
		if x := g.cursorX + d; x >= 0 && x < SCREEN_WIDTH {
			screen[g.cursorY*pitch+x] = demoCursorColor
		}
		if y := g.cursorY + d; y >= 0 && y < SCREEN_HEIGHT {
			screen[y*pitch+g.cursorX] = demoCursorColor
		}
	}
}
