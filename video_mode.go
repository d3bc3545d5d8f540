// video_mode.go - Fullscreen, windowed and widescreen mode transitions

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

// ModeController computes geometry for each mode and drives transitions
// between Windowed and Fullscreen, with Widescreen layered on fullscreen.
type ModeController struct {
	sys *VideoSubsystem
}

func (m *ModeController) initialGeometry() DisplayGeometry {
	if m.sys.cfg.Fullscreen {
		return m.fullscreenGeometry()
	}
	return m.windowedGeometry()
}

// fullscreenGeometry uses the configured screen size, or the desktop when
// the size is 0x0. The auto size is written back as 0x0.
func (m *ModeController) fullscreenGeometry() DisplayGeometry {
	s := m.sys
	screenW, screenH := s.cfg.ScreenWidth, s.cfg.ScreenHeight
	if screenW == 0 || screenH == 0 {
		screenW, screenH = s.desktopWidth, s.desktopHeight
		s.cfg.ScreenWidth, s.cfg.ScreenHeight = 0, 0
	} else {
		m.ValidScreenMode(screenW, screenH)
	}
	width, height := fitFullscreen(screenW, screenH)
	return newGeometry(width, height, screenW, screenH, true, false)
}

func (m *ModeController) windowedGeometry() DisplayGeometry {
	s := m.sys
	width, height, winW, winH, clamped := fitWindowed(s.cfg.WindowWidth, s.cfg.WindowHeight, s.desktopHeight)
	if clamped {
		logger().Info("window clamped to desktop", "width", winW, "height", winH)
	}
	s.cfg.WindowWidth, s.cfg.WindowHeight = winW, winH
	return newGeometry(width, height, winW, winH, false, false)
}

// ToggleFullscreen swaps between windowed and fullscreen by recreating the
// window. A stored widescreen preference is re-applied on entering
// fullscreen, or deferred until the game is in a level.
func (m *ModeController) ToggleFullscreen() {
	s := m.sys
	wasWide := s.display.geometry.Widescreen
	s.cfg.Fullscreen = !s.cfg.Fullscreen
	var g DisplayGeometry
	if s.cfg.Fullscreen {
		s.platform.SaveWindowPosition(s.windowX, s.windowY)
		g = m.fullscreenGeometry()
	} else {
		g = m.windowedGeometry()
	}
	s.pendingWidescreen = false
	s.pendingResize = nil
	if err := s.display.recreate(g); err != nil {
		s.fail(err)
		return
	}
	if s.mouse.grabbed {
		s.mouse.centerPointer()
	}
	g = s.display.Geometry()
	s.updateFocus()
	if wasWide {
		s.hooks.WidescreenChanged(false)
	}

	if g.Fullscreen && s.cfg.Widescreen {
		if s.state.GameState() == GameStateLevel {
			m.ToggleWidescreen(true)
		} else {
			s.pendingWidescreen = true
		}
	}
	logger().Info("display mode changed",
		"fullscreen", g.Fullscreen,
		"size", fmt.Sprintf("%dx%d", g.Width, g.Height),
		"window", fmt.Sprintf("%dx%d", g.WindowWidth, g.WindowHeight))
	m.saveDefaults()
}

// widescreenAllowed reports fullscreen at an aspect of at least 16:10.
func (m *ModeController) widescreenAllowed() bool {
	d := m.sys.display
	if !d.geometry.Fullscreen || d.window == nil {
		return false
	}
	w, h := d.window.Size()
	if h <= 0 {
		return false
	}
	return float64(w)/float64(h) >= WIDESCREEN_MIN_ASPECT
}

// ToggleWidescreen enables or disables the widescreen band. Outside
// fullscreen or on a narrower display it only clears the widescreen state.
func (m *ModeController) ToggleWidescreen(enable bool) {
	s := m.sys
	s.pendingWidescreen = false
	g := s.display.Geometry()
	if !m.widescreenAllowed() {
		if s.cfg.Widescreen || g.Widescreen {
			s.cfg.Widescreen = false
			if g.Widescreen {
				s.display.applyGeometry(newGeometry(g.Width, g.Height, g.WindowWidth, g.WindowHeight, g.Fullscreen, false))
				s.display.palette.MarkDirty()
				s.hooks.WidescreenChanged(false)
			}
			m.saveDefaults()
		}
		return
	}
	s.cfg.Widescreen = enable
	if g.Widescreen == enable {
		return
	}
	s.display.applyGeometry(newGeometry(g.Width, g.Height, g.WindowWidth, g.WindowHeight, g.Fullscreen, enable))
	if enable {
		s.display.clearBackBuffer()
	}
	s.display.palette.MarkDirty()
	s.hooks.WidescreenChanged(enable)
	logger().Debug("widescreen changed", "enabled", enable)
	m.saveDefaults()
}

// ApplyPendingWidescreen consumes a deferred widescreen switch.
func (m *ModeController) ApplyPendingWidescreen() {
	if !m.sys.pendingWidescreen {
		return
	}
	m.sys.pendingWidescreen = false
	m.ToggleWidescreen(true)
}

// Resize fits the window to requestedHeight. It is ignored in fullscreen.
func (m *ModeController) Resize(requestedHeight int) {
	s := m.sys
	g := s.display.Geometry()
	if g.Fullscreen {
		return
	}
	width, height, winW, winH := fitResize(requestedHeight, s.desktopWidth, s.desktopHeight, g.Widescreen)
	ng := newGeometry(width, height, winW, winH, false, g.Widescreen)
	if err := s.display.resize(ng); err != nil {
		s.fail(err)
		return
	}
	s.cfg.WindowWidth, s.cfg.WindowHeight = winW, winH
	if s.mouse.grabbed {
		s.mouse.centerPointer()
	}
	logger().Debug("window resized", "requested", requestedHeight, "width", winW, "height", winH)
	m.saveDefaults()
}

// ValidScreenMode reports whether width x height is an enumerated mode of
// the primary display. A miss is only logged.
func (m *ModeController) ValidScreenMode(width, height int) bool {
	modes, err := m.sys.backend.DisplayModes()
	if err != nil {
		logger().Warn("cannot enumerate display modes", "err", err)
		return true
	}
	for _, mode := range modes {
		if mode.Width == width && mode.Height == height {
			return true
		}
	}
	logger().Warn("screen size matches no display mode", "width", width, "height", height)
	return false
}

// saveDefaults persists the configuration; failures are logged only.
func (m *ModeController) saveDefaults() {
	if err := m.sys.store.Save(m.sys.cfg); err != nil {
		logger().Warn("save video config", "err", err)
	}
}
