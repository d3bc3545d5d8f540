// video_geometry.go - Display geometry and aspect-correct size fitting

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
	SCREEN_WIDTH          = 640 // logical back buffer width
	SCREEN_HEIGHT         = 400 // logical back buffer height
	ORIGINAL_WIDTH        = 320 // base logical width the minimum window height derives from
	SBAR_HEIGHT           = 64  // status bar band reclaimed in widescreen
	FRACBITS              = 16
	MIN_WINDOW_HEIGHT     = ORIGINAL_WIDTH * 3 / 4
	WIDESCREEN_MIN_ASPECT = 16.0 / 10.0
	UNGRAB_INSET          = 16 // released pointer rests this far from the bottom-right corner
)

// DisplayGeometry is recomputed as a whole on every mode transition.
type DisplayGeometry struct {
	Width         int // scaled output width; always even
	Height        int // scaled output height
	WindowWidth   int
	WindowHeight  int
	Fullscreen    bool
	Widescreen    bool
	StepX         int // 16.16 back buffer pixels per output pixel
	StepY         int
	StartX        int
	StartY        int
	Source        Rect // renderable band of the back buffer
	LogicalWidth  int  // renderer logical size, 0 to stretch
	LogicalHeight int
}

func newGeometry(width, height, winW, winH int, fullscreen, widescreen bool) DisplayGeometry {
	g := DisplayGeometry{
		Width:        width,
		Height:       height,
		WindowWidth:  winW,
		WindowHeight: winH,
		Fullscreen:   fullscreen,
		Widescreen:   widescreen,
		Source:       Rect{W: SCREEN_WIDTH, H: SCREEN_HEIGHT},
	}
	if width > 0 {
		g.StepX = (SCREEN_WIDTH << FRACBITS) / width
	}
	if height > 0 {
		g.StepY = (SCREEN_HEIGHT << FRACBITS) / height
	}
	g.StartX = g.StepX - 1
	g.StartY = g.StepY - 1
	switch {
	case widescreen:
		g.Source.H = SCREEN_HEIGHT - SBAR_HEIGHT
		g.LogicalWidth, g.LogicalHeight = SCREEN_WIDTH, SCREEN_HEIGHT
	case fullscreen:
		g.LogicalWidth, g.LogicalHeight = SCREEN_WIDTH, SCREEN_WIDTH*3/4
	}
	return g
}

func evenWidth(w int) int {
	return w &^ 1
}

// fitFullscreen derives a 4:3 size from the screen height, falling back to
// the screen width when the screen is narrower than 4:3.
func fitFullscreen(screenW, screenH int) (width, height int) {
	height = screenH
	width = evenWidth(height * 4 / 3)
	if width > screenW {
		width = evenWidth(screenW)
		height = width * 3 / 4
	}
	return width, height
}

// fitWindowed clamps a persisted window to the desktop and derives the
// 4:3 output size inside it. clamped reports whether the window shrank.
func fitWindowed(winW, winH, desktopH int) (width, height, newWinW, newWinH int, clamped bool) {
	if winH > desktopH {
		winH = desktopH
		winW = evenWidth(winH * 4 / 3)
		clamped = true
	}
	height = max(MIN_WINDOW_HEIGHT, winH)
	width = evenWidth(height * 4 / 3)
	if width > winW {
		width = evenWidth(winW)
		height = width * 3 / 4
	}
	return width, height, winW, winH, clamped
}

// fitResize computes the window for a requested height: clamped to
// [MIN_WINDOW_HEIGHT, desktopH] with the minimum winning, width from 4:3 and
// bounded by the desktop width. In widescreen the output height grows by the
// status bar share so the band fills the window.
func fitResize(requestedH, desktopW, desktopH int, widescreen bool) (width, height, winW, winH int) {
	winH = max(MIN_WINDOW_HEIGHT, min(requestedH, desktopH))
	winW = evenWidth(winH * 4 / 3)
	if desktopW > 0 && winW > desktopW {
		winW = evenWidth(desktopW)
		winH = max(MIN_WINDOW_HEIGHT, winW*3/4)
	}
	height = winH
	if widescreen {
		height += int(float64(height)*SBAR_HEIGHT/(SCREEN_HEIGHT-SBAR_HEIGHT) + 1.5)
	}
	return winW, height, winW, winH
}
