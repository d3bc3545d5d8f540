package main

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
)

// testEngine is a scriptable EngineState and GameHooks.
type testEngine struct {
	menu       bool
	paused     bool
	console    bool
	state      GameState
	quitting   bool
	splash     bool
	suppressed bool
	reveal     bool
	mouseLook  bool

	pauses       int
	quits        int
	cheatClears  int
	revealEnds   int
	repeatClears int
	resumes      int
	widescreen   []bool
}

func newTestEngine() *testEngine {
	return &testEngine{state: GameStateLevel, mouseLook: true}
}

func (e *testEngine) MenuActive() bool       { return e.menu }
func (e *testEngine) Paused() bool           { return e.paused }
func (e *testEngine) ConsoleActive() bool    { return e.console }
func (e *testEngine) GameState() GameState   { return e.state }
func (e *testEngine) Quitting() bool         { return e.quitting }
func (e *testEngine) SplashScreen() bool     { return e.splash }
func (e *testEngine) InputSuppressed() bool  { return e.suppressed }
func (e *testEngine) RevealActive() bool     { return e.reveal }
func (e *testEngine) MouseLookEnabled() bool { return e.mouseLook }

func (e *testEngine) RequestPause() {
	e.pauses++
	e.paused = true
}

func (e *testEngine) RequestQuit() { e.quits++ }

func (e *testEngine) ResumeForQuit() {
	e.resumes++
	e.paused = false
}

func (e *testEngine) ClearCheatEntry()               { e.cheatClears++ }
func (e *testEngine) EndReveal()                     { e.revealEnds++; e.reveal = false }
func (e *testEngine) ClearKeyRepeat()                { e.repeatClears++ }
func (e *testEngine) WidescreenChanged(enabled bool) { e.widescreen = append(e.widescreen, enabled) }

type countingStore struct {
	saves int
	last  VideoConfig
}

func (s *countingStore) Save(cfg *VideoConfig) error {
	s.saves++
	s.last = *cfg
	return nil
}

type countingCue struct {
	played int
}

func (c *countingCue) PlayQuitCue() { c.played++ }

type fatalRecorder struct {
	errs []error
}

func (f *fatalRecorder) record(err error) { f.errs = append(f.errs, err) }

// stepClock advances by step on every call.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

type testRig struct {
	sys     *VideoSubsystem
	backend *HeadlessBackend
	engine  *testEngine
	queue   *EventQueue
	store   *countingStore
	fatal   *fatalRecorder
}

func newTestRig(t *testing.T, desktopW, desktopH int, cfg *VideoConfig, opts ...SubsystemOption) *testRig {
	t.Helper()
	if cfg == nil {
		cfg = DefaultVideoConfig()
	}
	r := &testRig{
		backend: NewHeadlessBackend(desktopW, desktopH),
		engine:  newTestEngine(),
		queue:   NewEventQueue(),
		store:   &countingStore{},
		fatal:   &fatalRecorder{},
	}
	opts = append([]SubsystemOption{WithConfigStore(r.store), WithFatal(r.fatal.record)}, opts...)
	r.sys = NewVideoSubsystem(r.backend, cfg, r.engine, r.engine, r.queue, opts...)
	return r
}

// startTestRig builds a rig and initializes it, failing the test on error.
func startTestRig(t *testing.T, desktopW, desktopH int, cfg *VideoConfig, opts ...SubsystemOption) *testRig {
	t.Helper()
	r := newTestRig(t, desktopW, desktopH, cfg, opts...)
	if err := r.sys.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(r.sys.Shutdown)
	return r
}

func windowedConfig() *VideoConfig {
	cfg := DefaultVideoConfig()
	cfg.Fullscreen = false
	return cfg
}

// tick runs one StartTick and returns the events it posted.
func (r *testRig) tick() []Event {
	r.sys.StartTick()
	return r.queue.Drain()
}

func grayPalette() []byte {
	raw := make([]byte, PALETTE_BYTES)
	for i := 0; i < PALETTE_ENTRIES; i++ {
		raw[i*3], raw[i*3+1], raw[i*3+2] = byte(i), byte(i), byte(i)
	}
	return raw
}

// levelCounter counts log records per level.
type levelCounter struct {
	mu     sync.Mutex
	counts map[slog.Level]int
}

func (c *levelCounter) Enabled(context.Context, slog.Level) bool { return true }

func (c *levelCounter) Handle(_ context.Context, r slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[r.Level]++
	return nil
}

func (c *levelCounter) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *levelCounter) WithGroup(string) slog.Handler      { return c }

func (c *levelCounter) count(level slog.Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[level]
}

// captureLogs routes the package logger into a levelCounter for one test.
func captureLogs(t *testing.T) *levelCounter {
	t.Helper()
	c := &levelCounter{counts: make(map[slog.Level]int)}
	prev := logger()
	SetLogger(slog.New(c))
	t.Cleanup(func() { SetLogger(prev) })
	return c
}
