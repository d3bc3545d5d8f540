// main.go - RetroVideo host: command line, configuration and main loop

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
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

func boilerPlate() {
	fmt.Println("\n\033[38;2;255;20;147mRetroVideo\033[0m - display and input host for a palette-indexed game engine")
	fmt.Println("F10 Widescreen  F11 Fullscreen  F12 FPS  +/- Gamma  Esc Menu  Enter Start")
	fmt.Println("License: GPLv3 or later")
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return VideoConfigFilename
	}
	return filepath.Join(dir, "retrovideo", VideoConfigFilename)
}

func main() {
	var (
		configPath string
		backend    string
		driver     string
		frames     int
		scriptPath string
		lumpDir    string
		showFPS    bool
		windowed   bool
		verbose    bool
		features   bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", defaultConfigPath(), "Video configuration file (YAML)")
	flagSet.StringVar(&backend, "backend", "", "Video backend: ebiten, sdl or headless (overrides config)")
	flagSet.StringVar(&driver, "driver", "", "Video driver hint passed to the backend")
	flagSet.IntVar(&frames, "frames", 0, "Stop after this many frames (headless default 600)")
	flagSet.StringVar(&scriptPath, "script", "", "Lua script with an on_tick(frame) hook")
	flagSet.StringVar(&lumpDir, "lumps", "", "Directory holding PLAYPAL.lmp")
	flagSet.BoolVar(&showFPS, "fps", false, "Show frames per second")
	flagSet.BoolVar(&windowed, "windowed", false, "Start in a window")
	flagSet.BoolVar(&verbose, "verbose", false, "Debug logging")
	flagSet.BoolVar(&features, "features", false, "Print compiled features and exit")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./retrovideo [-config video.yml] [-backend ebiten|sdl|headless] [-script hooks.lua] [-lumps dir]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if features {
		printFeatures()
		os.Exit(0)
	}

	boilerPlate()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := LoadVideoConfig(configPath)
	if err != nil {
		logger().Warn("using default video config", "err", err)
	}
	if backend != "" {
		cfg.VideoBackend = backend
	}
	if driver != "" {
		cfg.VideoDriver = driver
	}
	if showFPS {
		cfg.ShowFPS = true
	}
	if windowed {
		cfg.Fullscreen = false
	}

	videoBackend, err := NewVideoBackend(cfg.VideoBackend)
	if err != nil {
		fatalExit(err)
	}
	if hb, ok := videoBackend.(*HeadlessBackend); ok {
		hb.MaxFrames = frames
		if hb.MaxFrames == 0 {
			hb.MaxFrames = 600
		}
	}

	var cache ResourceCache = BuiltinResourceCache{}
	if lumpDir != "" {
		cache = NewDirResourceCache(lumpDir)
	}

	opts := []SubsystemOption{
		WithConfigStore(&FileConfigStore{Path: configPath}),
		WithResourceCache(cache),
	}
	if cue, err := NewOtoCuePlayer(CUE_SAMPLE_RATE); err != nil {
		logger().Warn("quit cue disabled", "err", err)
	} else {
		opts = append(opts, WithCuePlayer(cue))
	}

	queue := NewEventQueue()
	game := NewDemoGame(queue)
	sys := NewVideoSubsystem(videoBackend, cfg, game, game, queue, opts...)
	game.Attach(sys)

	if err := sys.Initialize(); err != nil {
		// already reported through the fatal channel
		os.Exit(1)
	}
	defer sys.Shutdown()

	if scriptPath != "" {
		host := NewScriptHost(sys)
		defer host.Close()
		if err := host.LoadFile(scriptPath); err != nil {
			logger().Error("script not loaded", "err", err)
		} else {
			game.SetScript(host)
		}
	}

	var loop FrameLoop = game
	if frames > 0 && videoBackend.Name() != VIDEO_BACKEND_HEADLESS {
		loop = &frameLimit{FrameLoop: game, remaining: frames}
	}
	if err := videoBackend.Run(loop); err != nil {
		logger().Error("main loop ended", "err", err)
		sys.Shutdown()
		os.Exit(1)
	}
	logger().Info("bye", "frames", sys.Display().FrameCount())
}

// frameLimit ends a windowed run after a fixed number of ticks.
type frameLimit struct {
	FrameLoop
	remaining int
}

func (f *frameLimit) Update() error {
	if f.remaining <= 0 {
		return ErrQuit
	}
	f.remaining--
	return f.FrameLoop.Update()
}
