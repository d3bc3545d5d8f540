package main

import "testing"

func newDemoRig(t *testing.T, cfg *VideoConfig) (*DemoGame, *VideoSubsystem, *HeadlessBackend) {
	t.Helper()
	backend := NewHeadlessBackend(1920, 1080)
	queue := NewEventQueue()
	game := NewDemoGame(queue)
	fatal := &fatalRecorder{}
	sys := NewVideoSubsystem(backend, cfg, game, game, queue,
		WithResourceCache(BuiltinResourceCache{}),
		WithFatal(fatal.record))
	game.Attach(sys)
	if err := sys.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(sys.Shutdown)
	return game, sys, backend
}

func TestDemoGame_RunsFrames(t *testing.T) {
	game, sys, backend := newDemoRig(t, nil)
	backend.MaxFrames = 20
	if err := backend.Run(game); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if backend.Frames != 20 || sys.Display().FrameCount() != 20 {
		t.Fatalf("frames %d presented %d", backend.Frames, sys.Display().FrameCount())
	}
	if backend.Window().presents != 20 {
		t.Fatalf("presents %d", backend.Window().presents)
	}
}

func TestDemoGame_StartupSuppressesKeys(t *testing.T) {
	game, sys, backend := newDemoRig(t, nil)

	backend.PushKey(ScancodeF11, true, 0)
	game.Update()
	game.Draw()
	if !sys.Config().Fullscreen {
		t.Fatal("keys during startup must be ignored")
	}

	for i := 0; i < demoStartupTicks; i++ {
		game.Update()
		game.Draw()
	}
	backend.PushKey(ScancodeF11, true, 0)
	game.Update()
	if sys.Config().Fullscreen || sys.Geometry().Fullscreen {
		t.Fatal("F11 should switch to a window")
	}
}

func TestDemoGame_HotkeysAndQuit(t *testing.T) {
	game, sys, backend := newDemoRig(t, nil)
	for i := 0; i < demoStartupTicks; i++ {
		game.Update()
		game.Draw()
	}

	backend.PushKey(ScancodeReturn, true, 0)
	backend.PushKey(ScancodeEquals, true, 0)
	game.Update()
	if game.GameState() != GameStateLevel {
		t.Fatal("Enter should start the level")
	}
	if sys.GammaIndex() != GAMMA_NEUTRAL_INDEX+1 {
		t.Fatalf("gamma index %d", sys.GammaIndex())
	}

	backend.PushKey(ScancodeF10, true, 0)
	game.Update()
	if !sys.Geometry().Widescreen || !game.widescreen {
		t.Fatal("F10 should enable widescreen on a 16:9 desktop")
	}

	backend.PushKey(ScancodeEscape, true, 0)
	backend.PushKey(ScancodeQ, true, 0)
	if err := game.Update(); err != ErrQuit {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}

func TestDemoGame_CloseRequest(t *testing.T) {
	game, _, backend := newDemoRig(t, nil)
	for i := 0; i < demoStartupTicks; i++ {
		game.Update()
	}
	backend.PushEvent(RawEvent{Kind: RawQuit})
	if err := game.Update(); err != ErrQuit {
		t.Fatalf("expected ErrQuit after close, got %v", err)
	}
}

func TestDemoGame_ScriptQuits(t *testing.T) {
	game, sys, backend := newDemoRig(t, nil)
	h := NewScriptHost(sys)
	defer h.Close()
	if err := h.Load(`function on_tick(frame) return frame >= 5 end`); err != nil {
		t.Fatalf("Load: %v", err)
	}
	game.SetScript(h)

	if err := backend.Run(game); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if backend.Frames != 4 {
		t.Fatalf("frames %d, want 4", backend.Frames)
	}
}
