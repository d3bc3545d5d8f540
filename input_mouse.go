// input_mouse.go - Pointer grab policy, acceleration and relative motion

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

import "math"

// mouseButtonBits maps backend button numbers (1=left 2=middle 3=right)
// to engine button bits.
var mouseButtonBits = [...]int{0, 1, 4, 2, 8, 16, 32, 64, 128}

// MouseController holds the live button mask and grab state.
type MouseController struct {
	sys       *VideoSubsystem
	buttons   int
	grabbed   bool
	threshold int
	factor    float64
}

func (m *MouseController) setButton(button int, down bool) {
	if button <= 0 || button >= len(mouseButtonBits) {
		return
	}
	bit := mouseButtonBits[button]
	if down {
		m.buttons |= bit
	} else {
		m.buttons &^= bit
	}
}

func (m *MouseController) Buttons() int { return m.buttons }

func (m *MouseController) Grabbed() bool { return m.grabbed }

func shouldGrab(focused, fullscreen, menuActive, paused, inLevel bool) bool {
	return focused && (fullscreen || (!menuActive && !paused && inLevel))
}

// ShouldGrab evaluates the grab policy against the current state.
func (m *MouseController) ShouldGrab() bool {
	s := m.sys
	return shouldGrab(
		s.windowFocused,
		s.display.geometry.Fullscreen,
		s.state.MenuActive(),
		s.state.Paused(),
		s.state.GameState() == GameStateLevel,
	)
}

// UpdateGrab applies a change in grab state. Entering hides and centers
// the pointer; leaving shows it and parks it near the bottom-right corner.
// The motion caused by either warp is discarded.
func (m *MouseController) UpdateGrab() {
	grab := m.ShouldGrab()
	if grab == m.grabbed {
		return
	}
	s := m.sys
	if grab {
		s.backend.SetPointerVisible(false)
		s.backend.SetRelativeMode(true)
		m.centerPointer()
	} else {
		s.backend.SetRelativeMode(false)
		s.backend.SetPointerVisible(true)
		if w := s.display.window; w != nil {
			width, height := w.Size()
			w.WarpPointer(width-UNGRAB_INSET, height-UNGRAB_INSET)
		}
		s.backend.RelativeMouseState()
	}
	m.grabbed = grab
	logger().Debug("pointer grab changed", "grabbed", grab)
}

func (m *MouseController) centerPointer() {
	s := m.sys
	if w := s.display.window; w != nil {
		width, height := w.Size()
		w.WarpPointer(width/2, height/2)
	}
	s.backend.RelativeMouseState()
}

// Accelerate passes small deltas through and scales the part of larger
// deltas beyond the threshold by the acceleration factor.
func (m *MouseController) Accelerate(delta int) int {
	return accelerate(delta, m.threshold, m.factor)
}

func accelerate(delta, threshold int, factor float64) int {
	mag := delta
	if mag < 0 {
		mag = -mag
	}
	if mag <= threshold {
		return delta
	}
	out := threshold + int(math.Round(float64(mag-threshold)*factor))
	if delta < 0 {
		return -out
	}
	return out
}

// axis applies acceleration and the per-axis settings. Screen Y grows
// downwards, so the vertical axis is negated unless inverted.
func (m *MouseController) axis(delta int, cfg MouseAxis, vertical bool) int {
	if cfg.Disabled || delta == 0 {
		return 0
	}
	v := m.Accelerate(delta)
	if vertical != cfg.Inverted {
		v = -v
	}
	return v
}

// PerTick reads relative motion and posts it as one motion event. While
// grabbed the pointer is recentered so motion never hits a screen edge.
func (m *MouseController) PerTick() {
	s := m.sys
	dx, dy := s.backend.RelativeMouseState()
	x := m.axis(dx, s.cfg.MouseX, false)
	y := m.axis(dy, s.cfg.MouseY, true)
	if x != 0 || y != 0 {
		s.events.PostEvent(Event{Type: EventMouseMotion, Data1: m.buttons, Data2: x, Data3: y})
	}
	if m.grabbed {
		m.centerPointer()
	}
}

// SetAcceleration updates threshold and factor, e.g. from a menu.
func (m *MouseController) SetAcceleration(threshold int, factor float64) {
	m.threshold = max(0, threshold)
	m.factor = factor
	m.sys.cfg.MouseThreshold = m.threshold
	m.sys.cfg.MouseAcceleration = factor
	m.sys.modes.saveDefaults()
}
