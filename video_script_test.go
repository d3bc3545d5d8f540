package main

import (
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestScriptHost_OnTick(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	h := NewScriptHost(r.sys)
	defer h.Close()

	err := h.Load(`
calls = 0
function on_tick(frame)
  calls = calls + 1
  set_gamma(12)
  return frame >= 3
end
`)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i := 1; i <= 3; i++ {
		quit, err := h.Tick()
		if err != nil {
			t.Fatalf("Tick %d: %v", i, err)
		}
		if quit != (i == 3) {
			t.Fatalf("Tick %d: quit=%v", i, quit)
		}
	}
	if n, ok := h.L.GetGlobal("calls").(lua.LNumber); !ok || n != 3 {
		t.Fatalf("calls = %v", h.L.GetGlobal("calls"))
	}
	if r.sys.GammaIndex() != 12 {
		t.Fatalf("gamma index %d, want 12", r.sys.GammaIndex())
	}
}

func TestScriptHost_GeometryAndModes(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	h := NewScriptHost(r.sys)
	defer h.Close()

	err := h.Load(`
local g = geometry()
width = g.width
was_fullscreen = g.fullscreen
toggle_fullscreen()
resize(100)
after = geometry().window_height
`)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if h.L.GetGlobal("width") != lua.LNumber(1440) {
		t.Fatalf("width = %v", h.L.GetGlobal("width"))
	}
	if !lua.LVAsBool(h.L.GetGlobal("was_fullscreen")) {
		t.Fatal("expected fullscreen at startup")
	}
	if h.L.GetGlobal("after") != lua.LNumber(240) {
		t.Fatalf("window height after resize = %v", h.L.GetGlobal("after"))
	}
	if r.sys.Geometry().Fullscreen {
		t.Fatal("toggle_fullscreen had no effect")
	}
}

func TestScriptHost_QuitWithoutHook(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	h := NewScriptHost(r.sys)
	defer h.Close()

	if err := h.Load(`quit()`); err != nil {
		t.Fatalf("Load: %v", err)
	}
	quit, err := h.Tick()
	if err != nil || !quit {
		t.Fatalf("quit=%v err=%v", quit, err)
	}
}

func TestScriptHost_Errors(t *testing.T) {
	r := startTestRig(t, 1920, 1080, nil)
	h := NewScriptHost(r.sys)
	defer h.Close()

	if err := h.Load(`function (`); err == nil {
		t.Fatal("expected syntax error")
	}
	if err := h.Load(`function on_tick(frame) error("boom") end`); err != nil {
		t.Fatalf("Load: %v", err)
	}
	top := h.L.GetTop()
	if _, err := h.Tick(); err == nil {
		t.Fatal("expected runtime error from on_tick")
	}
	if h.L.GetTop() != top {
		t.Fatalf("stack not restored: %d, want %d", h.L.GetTop(), top)
	}
	if err := h.LoadFile("does-not-exist.lua"); err == nil {
		t.Fatal("expected error for missing script file")
	}
}
