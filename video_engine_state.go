// video_engine_state.go - Game layer collaborators consulted by the display subsystem

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

// GameState is the game layer's coarse state.
type GameState int

const (
	GameStateLevel GameState = iota
	GameStateIntermission
	GameStateFinale
	GameStateDemoScreen
)

// EngineState is the read-only view of the game layer.
type EngineState interface {
	MenuActive() bool
	Paused() bool
	ConsoleActive() bool
	GameState() GameState
	Quitting() bool
	SplashScreen() bool
	// InputSuppressed gates key-down events, e.g. during the startup sequence.
	InputSuppressed() bool
	// RevealActive reports the reveal-mode overlay that a key press dismisses.
	RevealActive() bool
	MouseLookEnabled() bool
}

// GameHooks are the requests the display subsystem sends back to the game layer.
type GameHooks interface {
	RequestPause()
	RequestQuit()
	// ResumeForQuit unpauses ahead of the quit prompt; the game re-pauses
	// if the prompt is declined.
	ResumeForQuit()
	ClearCheatEntry()
	EndReveal()
	ClearKeyRepeat()
	WidescreenChanged(enabled bool)
}

// PlatformServices isolates platform-only glue.
type PlatformServices interface {
	SaveWindowPosition(x, y int)
	SyncKeyboardLEDs(alwaysRun bool)
	RestoreKeyboardLEDs()
}

// NoopPlatform is the default PlatformServices.
type NoopPlatform struct{}

func (NoopPlatform) SaveWindowPosition(int, int) {}
func (NoopPlatform) SyncKeyboardLEDs(bool)      {}
func (NoopPlatform) RestoreKeyboardLEDs()       {}

// CuePlayer plays short confirmation sounds.
type CuePlayer interface {
	PlayQuitCue()
}

type silentCue struct{}

func (silentCue) PlayQuitCue() {}
