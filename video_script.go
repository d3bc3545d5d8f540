// video_script.go - Lua per-tick automation of the display subsystem

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

	lua "github.com/yuin/gopher-lua"
)

// ScriptHost runs a Lua script against a VideoSubsystem. The script may
// define on_tick(frame), which is called once per tick; returning true
// from it requests a quit.
//
// Globals: toggle_fullscreen(), toggle_widescreen(on), resize(height),
// set_gamma(index), quit(), geometry() and fps().
type ScriptHost struct {
	L      *lua.LState
	sys    *VideoSubsystem
	onTick *lua.LFunction
	frame  int
	quit   bool
}

func NewScriptHost(sys *VideoSubsystem) *ScriptHost {
	h := &ScriptHost{L: lua.NewState(), sys: sys}
	h.register()
	return h
}

func (h *ScriptHost) register() {
	L := h.L
	L.SetGlobal("toggle_fullscreen", L.NewFunction(func(L *lua.LState) int {
		h.sys.modes.ToggleFullscreen()
		return 0
	}))
	L.SetGlobal("toggle_widescreen", L.NewFunction(func(L *lua.LState) int {
		h.sys.modes.ToggleWidescreen(L.OptBool(1, true))
		return 0
	}))
	L.SetGlobal("resize", L.NewFunction(func(L *lua.LState) int {
		h.sys.modes.Resize(L.CheckInt(1))
		return 0
	}))
	L.SetGlobal("set_gamma", L.NewFunction(func(L *lua.LState) int {
		h.sys.SetGammaIndex(L.CheckInt(1))
		return 0
	}))
	L.SetGlobal("quit", L.NewFunction(func(L *lua.LState) int {
		h.quit = true
		return 0
	}))
	L.SetGlobal("fps", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(h.sys.display.FPS()))
		return 1
	}))
	L.SetGlobal("geometry", L.NewFunction(func(L *lua.LState) int {
		g := h.sys.Geometry()
		t := L.NewTable()
		t.RawSetString("width", lua.LNumber(g.Width))
		t.RawSetString("height", lua.LNumber(g.Height))
		t.RawSetString("window_width", lua.LNumber(g.WindowWidth))
		t.RawSetString("window_height", lua.LNumber(g.WindowHeight))
		t.RawSetString("fullscreen", lua.LBool(g.Fullscreen))
		t.RawSetString("widescreen", lua.LBool(g.Widescreen))
		L.Push(t)
		return 1
	}))
}

// Load runs the script body and picks up its on_tick function.
func (h *ScriptHost) Load(src string) error {
	if err := h.L.DoString(src); err != nil {
		return fmt.Errorf("lua script: %w", err)
	}
	if fn, ok := h.L.GetGlobal("on_tick").(*lua.LFunction); ok {
		h.onTick = fn
	}
	return nil
}

func (h *ScriptHost) LoadFile(path string) error {
	if err := h.L.DoFile(path); err != nil {
		return fmt.Errorf("lua script %s: %w", path, err)
	}
	if fn, ok := h.L.GetGlobal("on_tick").(*lua.LFunction); ok {
		h.onTick = fn
	}
	return nil
}

// Tick calls on_tick with the frame number. It reports whether the script
// asked to quit.
func (h *ScriptHost) Tick() (bool, error) {
	h.frame++
	if h.onTick != nil {
		top := h.L.GetTop()
		err := h.L.CallByParam(lua.P{Fn: h.onTick, NRet: 1, Protect: true}, lua.LNumber(h.frame))
		if err != nil {
			h.L.SetTop(top)
			return false, fmt.Errorf("on_tick frame %d: %w", h.frame, err)
		}
		if lua.LVAsBool(h.L.Get(-1)) {
			h.quit = true
		}
		h.L.SetTop(top)
	}
	return h.quit, nil
}

func (h *ScriptHost) Close() {
	h.L.Close()
}
