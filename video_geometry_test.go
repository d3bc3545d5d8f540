package main

import (
	"math"
	"testing"
)

func assertFourThree(t *testing.T, what string, width, height int) {
	t.Helper()
	if width%2 != 0 {
		t.Fatalf("%s: width %d is odd", what, width)
	}
	if height <= 0 {
		t.Fatalf("%s: height %d", what, height)
	}
	if aspect := float64(width) / float64(height); math.Abs(aspect-4.0/3.0) > 0.02 {
		t.Fatalf("%s: %dx%d is not 4:3 (%.3f)", what, width, height, aspect)
	}
}

func TestFitFullscreen(t *testing.T) {
	screens := [][2]int{{1920, 1080}, {1280, 1024}, {640, 480}, {2560, 1440}, {1080, 1920}, {1366, 768}}
	for _, s := range screens {
		w, h := fitFullscreen(s[0], s[1])
		if w > s[0] || h > s[1] {
			t.Fatalf("%dx%d: fit %dx%d exceeds screen", s[0], s[1], w, h)
		}
		assertFourThree(t, "fullscreen", w, h)
	}
	if w, h := fitFullscreen(1920, 1080); w != 1440 || h != 1080 {
		t.Fatalf("1920x1080: expected 1440x1080, got %dx%d", w, h)
	}
}

func TestFitWindowed_ClampsToDesktop(t *testing.T) {
	width, height, winW, winH, clamped := fitWindowed(2000, 1500, 1080)
	if !clamped {
		t.Fatal("expected clamping")
	}
	if winH != 1080 || winW != 1440 {
		t.Fatalf("expected 1440x1080 window, got %dx%d", winW, winH)
	}
	assertFourThree(t, "windowed", width, height)

	_, _, winW, winH, clamped = fitWindowed(640, 480, 1080)
	if clamped || winW != 640 || winH != 480 {
		t.Fatalf("640x480 should be kept, got %dx%d clamped=%v", winW, winH, clamped)
	}
}

func TestFitResize(t *testing.T) {
	const desktopW, desktopH = 1920, 1080
	for requested := -50; requested <= 2400; requested += 37 {
		width, height, winW, winH := fitResize(requested, desktopW, desktopH, false)
		if winH < MIN_WINDOW_HEIGHT {
			t.Fatalf("requested %d: window height %d below minimum", requested, winH)
		}
		if winW > desktopW || winH > desktopH {
			t.Fatalf("requested %d: window %dx%d exceeds desktop", requested, winW, winH)
		}
		if width != winW || height != winH {
			t.Fatalf("requested %d: output %dx%d differs from window %dx%d", requested, width, height, winW, winH)
		}
		assertFourThree(t, "resize", winW, winH)
	}

	width, height, winW, winH := fitResize(100, desktopW, desktopH, false)
	if width != 320 || height != 240 || winW != 320 || winH != 240 {
		t.Fatalf("Resize(100): expected 320x240, got %dx%d window %dx%d", width, height, winW, winH)
	}
}

func TestFitResize_WidescreenGrowsHeight(t *testing.T) {
	_, narrow, _, _ := fitResize(600, 1920, 1080, false)
	_, wide, _, winH := fitResize(600, 1920, 1080, true)
	if wide <= narrow {
		t.Fatalf("widescreen height %d should exceed %d", wide, narrow)
	}
	if winH != 600 {
		t.Fatalf("window height %d, want 600", winH)
	}
}

func TestNewGeometry_Bands(t *testing.T) {
	g := newGeometry(1440, 1080, 1920, 1080, true, false)
	if g.Source != (Rect{W: SCREEN_WIDTH, H: SCREEN_HEIGHT}) {
		t.Fatalf("fullscreen source %+v", g.Source)
	}
	if g.LogicalWidth != 640 || g.LogicalHeight != 480 {
		t.Fatalf("fullscreen logical %dx%d", g.LogicalWidth, g.LogicalHeight)
	}
	if g.StepX != (SCREEN_WIDTH<<FRACBITS)/1440 || g.StartX != g.StepX-1 {
		t.Fatalf("step %d start %d", g.StepX, g.StartX)
	}

	g = newGeometry(1440, 1080, 1920, 1080, true, true)
	if g.Source.H != SCREEN_HEIGHT-SBAR_HEIGHT || g.Source.W != SCREEN_WIDTH {
		t.Fatalf("widescreen source %+v", g.Source)
	}
	if g.LogicalWidth != SCREEN_WIDTH || g.LogicalHeight != SCREEN_HEIGHT {
		t.Fatalf("widescreen logical %dx%d", g.LogicalWidth, g.LogicalHeight)
	}

	g = newGeometry(640, 480, 640, 480, false, false)
	if g.LogicalWidth != 0 || g.LogicalHeight != 0 {
		t.Fatalf("windowed logical %dx%d, want stretch", g.LogicalWidth, g.LogicalHeight)
	}
}
