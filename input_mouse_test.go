package main

import "testing"

func TestAccelerate(t *testing.T) {
	tests := []struct {
		delta     int
		threshold int
		factor    float64
		want      int
	}{
		{0, 10, 2.0, 0},
		{5, 10, 2.0, 5},
		{-5, 10, 2.0, -5},
		{10, 10, 2.0, 10},
		{11, 10, 2.0, 12},
		{20, 10, 2.0, 30},
		{-20, 10, 2.0, -30},
		{13, 10, 1.5, 15}, // 10 + round(4.5)
		{7, 0, 1.0, 7},
	}
	for _, tt := range tests {
		if got := accelerate(tt.delta, tt.threshold, tt.factor); got != tt.want {
			t.Fatalf("accelerate(%d, %d, %v) = %d, want %d", tt.delta, tt.threshold, tt.factor, got, tt.want)
		}
	}
}

func TestAccelerate_OddSymmetric(t *testing.T) {
	for d := 0; d < 200; d++ {
		if accelerate(-d, 10, 2.5) != -accelerate(d, 10, 2.5) {
			t.Fatalf("accelerate not odd at %d", d)
		}
	}
}

func TestShouldGrab_AllStates(t *testing.T) {
	for mask := 0; mask < 32; mask++ {
		focused := mask&1 != 0
		fullscreen := mask&2 != 0
		menu := mask&4 != 0
		paused := mask&8 != 0
		inLevel := mask&16 != 0

		got := shouldGrab(focused, fullscreen, menu, paused, inLevel)
		switch {
		case !focused:
			if got {
				t.Fatalf("mask %05b: unfocused window must not grab", mask)
			}
		case fullscreen:
			if !got {
				t.Fatalf("mask %05b: focused fullscreen must grab", mask)
			}
		default:
			want := !menu && !paused && inLevel
			if got != want {
				t.Fatalf("mask %05b: windowed grab = %v, want %v", mask, got, want)
			}
		}
	}
}

func TestMouseButtons_Bitmask(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)

	r.backend.PushEvent(RawEvent{Kind: RawMouseButtonDown, Button: 1})
	events := r.tick()
	if len(events) != 1 || events[0].Type != EventMouseButton || events[0].Data1 != 1 {
		t.Fatalf("left press: %+v", events)
	}

	r.backend.PushEvent(RawEvent{Kind: RawMouseButtonDown, Button: 3})
	r.backend.PushEvent(RawEvent{Kind: RawMouseButtonUp, Button: 1})
	events = r.tick()
	if len(events) != 2 || events[0].Data1 != 3 || events[1].Data1 != 2 {
		t.Fatalf("right press, left release: %+v", events)
	}

	r.backend.PushEvent(RawEvent{Kind: RawMouseButtonDown, Button: 2})
	events = r.tick()
	if len(events) != 1 || events[0].Data1 != 2|4 {
		t.Fatalf("middle press: %+v", events)
	}
	if r.sys.Mouse().Buttons() != 6 {
		t.Fatalf("buttons = %d, want 6", r.sys.Mouse().Buttons())
	}
}

func TestMouseButtons_IgnoredWithoutMouseLook(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	r.engine.mouseLook = false

	r.backend.PushEvent(RawEvent{Kind: RawMouseButtonDown, Button: 1})
	r.backend.PushEvent(RawEvent{Kind: RawMouseWheel, WheelY: 1})
	if events := r.tick(); len(events) != 0 {
		t.Fatalf("expected no events, got %+v", events)
	}

	r.engine.menu = true
	r.backend.PushEvent(RawEvent{Kind: RawMouseButtonDown, Button: 1})
	if events := r.tick(); len(events) != 1 {
		t.Fatalf("menu should enable buttons, got %+v", events)
	}
}

func TestMouseWheel(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	r.backend.PushEvent(RawEvent{Kind: RawMouseWheel, WheelY: 0})
	r.backend.PushEvent(RawEvent{Kind: RawMouseWheel, WheelY: -1})
	events := r.tick()
	if len(events) != 1 || events[0].Type != EventMouseWheel || events[0].Data1 != -1 {
		t.Fatalf("wheel: %+v", events)
	}
}

func TestMouseMotion_AxesAndRecenter(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	if !r.sys.Mouse().Grabbed() {
		t.Fatal("expected grab in focused fullscreen")
	}
	cx, cy := r.backend.Pointer()

	r.backend.PushMotion(5, 3)
	events := r.tick()
	if len(events) != 1 || events[0].Type != EventMouseMotion {
		t.Fatalf("motion: %+v", events)
	}
	if events[0].Data2 != 5 || events[0].Data3 != -3 {
		t.Fatalf("motion dx=%d dy=%d, want 5 -3", events[0].Data2, events[0].Data3)
	}
	if x, y := r.backend.Pointer(); x != cx || y != cy {
		t.Fatalf("pointer at %d,%d, want recentered at %d,%d", x, y, cx, cy)
	}

	if events := r.tick(); len(events) != 0 {
		t.Fatalf("recentering must not produce motion: %+v", events)
	}

	r.sys.Config().MouseY.Inverted = true
	r.sys.Config().MouseX.Disabled = true
	r.backend.PushMotion(20, 3)
	events = r.tick()
	if len(events) != 1 || events[0].Data2 != 0 || events[0].Data3 != 3 {
		t.Fatalf("inverted/disabled motion: %+v", events)
	}

	r.sys.Config().MouseX.Disabled = false
	r.backend.PushMotion(20, 0)
	events = r.tick()
	if len(events) != 1 || events[0].Data2 != 30 || events[0].Data3 != 0 {
		t.Fatalf("accelerated motion: %+v", events)
	}
}

func TestMouse_UngrabDiscardsWarp(t *testing.T) {
	r := startTestRig(t, 1920, 1080, windowedConfig())
	if !r.sys.Mouse().Grabbed() {
		t.Fatal("expected grab in a running level")
	}

	r.engine.menu = true
	r.sys.FinishUpdate()
	if r.sys.Mouse().Grabbed() {
		t.Fatal("menu should release the grab")
	}
	if !r.backend.PointerVisible() || r.backend.RelativeMode() {
		t.Fatal("released pointer must be visible and absolute")
	}
	w, h := r.backend.Window().Size()
	if x, y := r.backend.Pointer(); x != w-UNGRAB_INSET || y != h-UNGRAB_INSET {
		t.Fatalf("pointer at %d,%d, want %d,%d", x, y, w-UNGRAB_INSET, h-UNGRAB_INSET)
	}
	if events := r.tick(); len(events) != 0 {
		t.Fatalf("warp motion leaked: %+v", events)
	}
}

func TestMouse_SetAcceleration(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	r.sys.Mouse().SetAcceleration(-3, 1.5)
	if r.sys.Config().MouseThreshold != 0 || r.sys.Config().MouseAcceleration != 1.5 {
		t.Fatalf("config not updated: %+v", r.sys.Config())
	}
	if got := r.sys.Mouse().Accelerate(4); got != 6 {
		t.Fatalf("Accelerate(4) = %d, want 6", got)
	}
}
